package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studyhub/internal/config"
	"studyhub/internal/model"
	"studyhub/internal/repository"
	"studyhub/internal/resource"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.Mongo.Database)

	if err := repository.EnsureQuizIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	if err := repository.NewResourceRepo(db).ReplaceAll(ctx, resource.Defaults); err != nil {
		log.Fatalf("Failed to seed resources: %v", err)
	}
	fmt.Printf("Seeded %d resources\n", len(resource.Defaults))

	q := defaultQuiz(cfg.Quiz.DefaultSlug)
	if err := q.Validate(); err != nil {
		log.Fatalf("Default quiz is invalid: %v", err)
	}
	if err := repository.NewQuizRepo(db).Upsert(ctx, q); err != nil {
		log.Fatalf("Failed to seed quiz: %v", err)
	}

	fmt.Printf("Successfully seeded quiz '%s' (%d questions)\n", q.Slug, len(q.Questions))
}

func defaultQuiz(slug string) *model.Quiz {
	return &model.Quiz{
		Slug:  slug,
		Title: "Analyse : limites et dérivées",
		Questions: []model.Question{
			{
				Prompt: `Que vaut \(\lim_{x \to 0} \frac{\sin x}{x}\) ?`,
				Answers: []model.Answer{
					{Label: "0"},
					{Label: "1", IsCorrect: true},
					{Label: `\(+\infty\)`},
					{Label: "La limite n'existe pas"},
				},
			},
			{
				Prompt: `Quelle est la dérivée de \(f(x) = x^3\) ?`,
				Answers: []model.Answer{
					{Label: `\(3x^2\)`, IsCorrect: true},
					{Label: `\(x^2\)`},
					{Label: `\(3x^3\)`},
					{Label: `\(\frac{x^4}{4}\)`},
				},
			},
			{
				Prompt: `Que vaut $$\int_0^1 2x \, dx$$`,
				Answers: []model.Answer{
					{Label: "2"},
					{Label: "1", IsCorrect: true},
					{Label: `\(\frac{1}{2}\)`},
					{Label: "0"},
				},
			},
			{
				Prompt: `Quelle est la dérivée de \(e^{2x}\) ?`,
				Answers: []model.Answer{
					{Label: `\(e^{2x}\)`},
					{Label: `\(2e^{2x}\)`, IsCorrect: true},
					{Label: `\(2xe^{2x}\)`},
				},
			},
			{
				Prompt: `La suite \(u_n = \frac{1}{n}\) est :`,
				Answers: []model.Answer{
					{Label: "Croissante"},
					{Label: "Décroissante et convergente vers 0", IsCorrect: true},
					{Label: "Divergente"},
				},
			},
		},
	}
}
