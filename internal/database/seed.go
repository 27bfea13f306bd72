package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// seedNote is a love note inserted on first startup.
type seedNote struct {
	title   string
	content string
}

// seedMemory is a memory inserted on first startup. A zero month means the
// memory has no date; yearOffset is added to the startup year.
type seedMemory struct {
	title       string
	description string
	yearOffset  int
	month       time.Month
	day         int
	category    string
}

var defaultNotes = []seedNote{
	{
		title:   "Why I Love You",
		content: "Every moment with you feels like a beautiful dream. Your smile lights up my world and your laughter is my favorite sound. I love the way you make ordinary moments feel extraordinary and how you understand me like no one else ever has.",
	},
	{
		title:   "The Way You Make Me Feel",
		content: "With you, I feel completely myself - accepted, cherished, and loved. You've shown me what true happiness feels like, and every day I'm grateful that our paths crossed.",
	},
	{
		title:   "August 10 - The Beginning",
		content: "I'll never forget August 10th - the day we both admitted there was something special between us. My heart raced with excitement and hope, knowing this was the start of something beautiful. That moment changed everything for me.",
	},
	{
		title:   "September 14 - Love Confirmed",
		content: "When we said 'I love you' on September 14th, it felt like my heart found its home. Those three words have meant more each time we've said them, growing deeper and truer with every passing day.",
	},
	{
		title:   "Every Monthsary With You",
		content: "Each 14th of the month is a celebration of us. I'm endlessly grateful for every day we've shared, every challenge we've overcome together, and every moment of joy you've brought into my life. Here's to all the monthsaries to come!",
	},
	{
		title:   "My Favorite Things About You",
		content: "Your kindness that knows no bounds, your laughter that brightens any room, your patience when I need it most, your intelligence that constantly inspires me, and the way you love me - completely and unconditionally.",
	},
	{
		title:   "Our First Valentine's Together",
		content: "Celebrating our first Valentine's Day as a couple feels like a dream come true. You're the love I've always hoped for, and I can't wait to make this day as special as you are to me. This is just the first of many Valentine's we'll celebrate together.",
	},
	{
		title:   "My Promise to You",
		content: "I promise to love you more each day than I did the day before. I promise to be your safe place, your biggest supporter, and your partner in all things. I promise to cherish every moment with you and to always choose us.",
	},
}

var defaultMemories = []seedMemory{
	{
		title:       "The Beginning of Us",
		description: "August 10 - The day we first acknowledged that something special was growing between us. I remember the butterflies, the hope, and the beautiful realization that this was the start of our love story.",
		month:       time.August,
		day:         10,
		category:    "beginning",
	},
	{
		title:       "Love Confirmed",
		description: "September 14 - The day we officially confessed our love for each other. Saying 'I love you' felt natural yet revolutionary, changing everything in the most beautiful way.",
		month:       time.September,
		day:         14,
		category:    "milestone",
	},
	{
		title:       "One Month Together",
		description: "October 14 - Our first monthsary! One month of official love that already felt like forever. You had become my favorite part of every day.",
		month:       time.October,
		day:         14,
		category:    "monthsary",
	},
	{
		title:       "Two Months of Bliss",
		description: "November 14 - Two months with you and my gratitude only grew deeper. Thankful for your patience, understanding, and the joy of building something real together.",
		month:       time.November,
		day:         14,
		category:    "monthsary",
	},
	{
		title:       "Three Months Stronger",
		description: "December 14 - Three months in, and our love felt both comfortable and exciting. Celebrating our love during the holidays made everything feel magical.",
		month:       time.December,
		day:         14,
		category:    "monthsary",
	},
	{
		title:       "Four Months of Growth",
		description: "January 14 - Starting a new year with you by my side was the greatest gift. Four months together and grateful for every lesson learned and every moment of pure happiness.",
		yearOffset:  1,
		month:       time.January,
		day:         14,
		category:    "monthsary",
	},
	{
		title:       "Five Months & First Valentine's",
		description: "February 14 - Five months together and our first Valentine's Day! The perfect celebration of our love. You've made every day since August 10 feel like a celebration of true connection.",
		yearOffset:  1,
		month:       time.February,
		day:         14,
		category:    "valentine",
	},
	{
		title:       "Our Future Together",
		description: "Every 14th to come - Each monthsary is a reminder of how blessed I am to have you. No matter how many months pass, my gratitude only deepens. Here's to all our future celebrations.",
		category:    "future",
	},
}

// SeedResult reports how many records Seed inserted.
type SeedResult struct {
	Notes    int
	Memories int
}

// Seed fills the notes and memories tables with the default content when
// they are empty. Memory dates are computed from now. Both checks and all
// inserts run in one transaction, so a table that already has rows, including
// ones added by users, is never reseeded.
func (db *DB) Seed(ctx context.Context, now time.Time) (SeedResult, error) {
	var result SeedResult

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := timestamp(now)

	notes, err := count(ctx, tx, "love_notes")
	if err != nil {
		return result, err
	}
	if notes == 0 {
		for _, n := range defaultNotes {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO love_notes (title, content, is_secret, created_at) VALUES ($1, $2, $3, $4)`,
				n.title, n.content, false, createdAt,
			)
			if err != nil {
				return result, fmt.Errorf("failed to seed note %q: %w", n.title, err)
			}
			result.Notes++
		}
	}

	memories, err := count(ctx, tx, "memories")
	if err != nil {
		return result, err
	}
	if memories == 0 {
		for _, m := range defaultMemories {
			var date sql.NullTime
			if m.month != 0 {
				date = nullDate(time.Date(now.Year()+m.yearOffset, m.month, m.day, 0, 0, 0, 0, time.UTC))
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO memories (title, description, memory_date, created_at, category) VALUES ($1, $2, $3, $4, $5)`,
				m.title, nullString(m.description), date, createdAt, nullString(m.category),
			)
			if err != nil {
				return result, fmt.Errorf("failed to seed memory %q: %w", m.title, err)
			}
			result.Memories++
		}
	}

	if err := tx.Commit(); err != nil {
		return SeedResult{}, fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return result, nil
}
