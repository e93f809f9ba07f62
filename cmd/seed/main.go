// Command seed loads development data into the database. Topics and
// users have no write endpoints, so a fresh database is unusable until
// it has been seeded.
//
// Usage:
//
//	go run ./cmd/seed            # seeds data/newsboard.db (or DB_PATH)
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/mvasquez/newsboard/internal/config"
	"github.com/mvasquez/newsboard/internal/model"
	"github.com/mvasquez/newsboard/internal/repository/sqlite"
)

const avatarBase = "https://avatars.githubusercontent.com/u"

func devData() sqlite.SeedData {
	at := func(day int) time.Time {
		return time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC)
	}

	return sqlite.SeedData{
		Topics: []model.Topic{
			{Slug: "coding", Description: "Code is love, code is life"},
			{Slug: "football", Description: "FOOTIE!"},
			{Slug: "cooking", Description: "Hey good looking, what you got cooking?"},
		},
		Users: []model.User{
			{Username: "butter_bridge", Name: "Jonny", AvatarURL: avatarBase + "/1001"},
			{Username: "icellusedkars", Name: "Sam", AvatarURL: avatarBase + "/1002"},
			{Username: "rogersop", Name: "Paul", AvatarURL: avatarBase + "/1003"},
			{Username: "lurker", Name: "Do Nothing", AvatarURL: avatarBase + "/1004"},
		},
		Articles: []model.Article{
			{
				ArticleID: 1, Author: "butter_bridge",
				Title: "Living in the shadow of a great man",
				Body:  "I find this existence challenging",
				Topic: "coding", CreatedAt: at(1), Votes: 100,
				ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
			},
			{
				ArticleID: 2, Author: "icellusedkars",
				Title: "Eight pug gifs that remind me of mitch",
				Body:  "some gifs",
				Topic: "coding", CreatedAt: at(2), Votes: 0,
				ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
			},
			{
				ArticleID: 3, Author: "rogersop",
				Title: "UNCOVERED: catspiracy to bring down democracy",
				Body:  "Bastet walks amongst us, and the cats are taking arms!",
				Topic: "cooking", CreatedAt: at(3), Votes: 0,
				ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
			},
		},
		Comments: []model.Comment{
			{CommentID: 1, Body: "Oh, I've got compassion running out of my nose, pal!", ArticleID: 1, Author: "icellusedkars", Votes: 16, CreatedAt: at(5)},
			{CommentID: 2, Body: "The beautiful thing about treasure is that it exists.", ArticleID: 1, Author: "butter_bridge", Votes: 14, CreatedAt: at(6)},
			{CommentID: 3, Body: "Fruit pastilles", ArticleID: 2, Author: "rogersop", Votes: 0, CreatedAt: at(7)},
		},
	}
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Error("failed to create database directory", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	data := devData()
	if err := db.Seed(context.Background(), data); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("database seeded",
		slog.String("database", cfg.DBPath),
		slog.Int("topics", len(data.Topics)),
		slog.Int("users", len(data.Users)),
		slog.Int("articles", len(data.Articles)),
		slog.Int("comments", len(data.Comments)),
	)
}
