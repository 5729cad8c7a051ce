// Seeds the blog with the initial set of articles. Safe to run more than
// once: posts are upserted by slug.
package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/finsight/blog_backend/config"
	"github.com/finsight/blog_backend/models"
	"github.com/finsight/blog_backend/repositories"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	client := config.ConnectDB()
	repo := repositories.NewBlogRepository(client)

	posts := seedPosts()
	for _, post := range posts {
		if err := repo.UpsertBySlug(post); err != nil {
			log.Fatalf("Failed to seed post %q: %v", post.Title, err)
		}
		log.Printf("Seeded post: %s", post.Slug)
	}

	count, err := repo.CountPosts()
	if err != nil {
		log.Fatalf("Failed to count posts: %v", err)
	}
	log.Printf("Seeding complete, %d posts in collection", count)
}

func seedPosts() []models.BlogPost {
	now := time.Now()

	return []models.BlogPost{
		{
			Title:       "The Complete Guide to Building Wealth in Your 20s: A Decade-by-Decade Strategy",
			Slug:        models.Slugify("The Complete Guide to Building Wealth in Your 20s: A Decade-by-Decade Strategy"),
			Description: "Your twenties are a critical decade for establishing financial foundations. This guide covers everything from emergency funds to investment strategies.",
			Content: `<h2>The Foundation of Financial Success</h2>
<p>Your twenties are a critical period for establishing financial foundations.</p>
<h2>Emergency Fund: Your Financial Safety Net</h2>
<p>The first step in building wealth is creating an emergency fund. Aim to save 3-6 months of living expenses in a high-yield savings account.</p>
<h2>Investment Strategies for Young Professionals</h2>
<p>Start investing early to take advantage of compound interest. Consider index funds, ETFs and retirement accounts.</p>
<h2>Conclusion</h2>
<p>Building wealth in your twenties requires discipline, patience, and a long-term perspective.</p>`,
			PublishedDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ReadTime:      18,
			Category:      "Personal Finance",
			Author: models.Author{
				Name:        "Priya Sharma",
				Designation: "Certified Financial Planner",
				Bio:         "Priya has spent a decade helping young professionals build sustainable financial habits.",
			},
			Image:      "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?auto=format&fit=crop&w=1200&q=80",
			CoverImage: "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?auto=format&fit=crop&w=1200&q=80",
			Tags:       []string{"Wealth Building", "Personal Finance", "Investing"},
			RelatedPosts: []models.RelatedPost{
				{
					Title:    "Achieving FIRE in India",
					Excerpt:  "Financial independence and early retirement on an Indian income.",
					ImageURL: "https://images.unsplash.com/photo-1551836022-deb4988cc6c0?auto=format&fit=crop&w=500&q=80",
					Slug:     "achieving-fire-in-india",
				},
			},
			IsPublished: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Indian Stock Market Analysis 2024: Sectors to Watch",
			Slug:        models.Slugify("Indian Stock Market Analysis 2024: Sectors to Watch"),
			Description: "An in-depth analysis of the Indian stock market trends for 2024, covering the sectors positioned for growth.",
			Content: `<h2>Market Overview</h2>
<p>The Indian equity market enters 2024 with strong domestic flows and broadening retail participation.</p>
<h2>Sectors to Watch</h2>
<p>Manufacturing, financial services and renewable energy stand out for the year ahead.</p>
<h2>Risks</h2>
<p>Global rate cycles and commodity prices remain the main external risks.</p>`,
			PublishedDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			UpdatedDate:   time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			ReadTime:      14,
			Category:      "Investment",
			Author: models.Author{
				Name:        "Rahul Mehta",
				Designation: "Equity Research Analyst",
				Bio:         "Rahul covers Indian equities with a focus on mid-cap growth stories.",
			},
			Image:       "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?auto=format&fit=crop&w=1200&q=80",
			CoverImage:  "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?auto=format&fit=crop&w=1200&q=80",
			Tags:        []string{"Stock Market", "India", "Analysis"},
			IsPublished: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Achieving FIRE in India: A Realistic Roadmap",
			Slug:        models.Slugify("Achieving FIRE in India: A Realistic Roadmap"),
			Description: "Financial independence and early retirement on an Indian income: savings rates, corpus math and the lifestyle trade-offs involved.",
			Content: `<h2>What FIRE Means Here</h2>
<p>The FIRE movement adapts differently to Indian costs, family structures and inflation.</p>
<h2>The Corpus Math</h2>
<p>A corpus of 25-30x annual expenses is the usual target; healthcare inflation argues for the higher end.</p>
<h2>Conclusion</h2>
<p>Achieving FIRE in India requires careful planning, disciplined execution, and adaptability to changing circumstances.</p>`,
			PublishedDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ReadTime:      22,
			Category:      "Personal Finance",
			Author: models.Author{
				Name:        "Ankit Patel",
				Designation: "FIRE Movement Advocate",
				Bio:         "Ankit achieved financial independence at 35 and now helps others plan their path to early retirement.",
			},
			Image:       "https://images.unsplash.com/photo-1551836022-deb4988cc6c0?auto=format&fit=crop&w=1200&q=80",
			CoverImage:  "https://images.unsplash.com/photo-1551836022-deb4988cc6c0?auto=format&fit=crop&w=1200&q=80",
			Tags:        []string{"FIRE", "Financial Independence", "Early Retirement", "India"},
			IsPublished: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
