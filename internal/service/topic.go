package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mvasquez/newsboard/internal/model"
	"github.com/mvasquez/newsboard/internal/repository"
)

// TopicService exposes read access to topics.
type TopicService struct {
	topics repository.TopicRepository
	logger *slog.Logger
}

func NewTopicService(topics repository.TopicRepository, logger *slog.Logger) *TopicService {
	return &TopicService{
		topics: topics,
		logger: logger,
	}
}

// List returns all topics.
func (s *TopicService) List(ctx context.Context) ([]model.Topic, error) {
	topics, err := s.topics.ListTopics(ctx)
	if err != nil {
		s.logger.Error("failed to list topics", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing topics: %w", err)
	}
	return topics, nil
}
