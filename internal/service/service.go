package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ridwaanhall/SpaceX/internal/aggregate"
	"github.com/ridwaanhall/SpaceX/internal/apperr"
	"github.com/ridwaanhall/SpaceX/internal/endpoint"
	"github.com/ridwaanhall/SpaceX/internal/models"
	"github.com/ridwaanhall/SpaceX/internal/normalize"
	"github.com/ridwaanhall/SpaceX/internal/upstream"
	"go.uber.org/zap"
)

var ErrLaunchNotFound = errors.New("launch not found in upcoming set")

// Reply - результат операции для поля data ответа вместе с замечаниями
// проверки схемы
type Reply struct {
	Data     any
	Outcome  normalize.Outcome
	Warnings []normalize.Warning
}

func replyOf[T any](res normalize.Result[T]) Reply {
	return Reply{Data: res.Data(), Outcome: res.Outcome, Warnings: res.Warnings}
}

// Service связывает этапы конвейера: адрес, запрос, нормализация, агрегация
type Service struct {
	resolver   Resolver
	fetcher    Fetcher
	normalizer *normalize.Normalizer
	logger     *zap.Logger
	now        func() time.Time
}

// NewService создаёт новый экземпляр Service
func NewService(resolver Resolver, fetcher Fetcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		resolver:   resolver,
		fetcher:    fetcher,
		normalizer: normalize.New(logger),
		logger:     logger,
		now:        time.Now,
	}
}

func (s *Service) fetch(ctx context.Context, kind endpoint.Kind, shape upstream.Shape) (json.RawMessage, error) {
	url, err := s.resolver.Resolve(kind)
	if err != nil {
		return nil, err
	}
	return s.fetcher.Fetch(ctx, kind, url, shape)
}

// Stats возвращает статистику провайдера
func (s *Service) Stats(ctx context.Context) (Reply, error) {
	raw, err := s.fetch(ctx, endpoint.KindStats, upstream.ShapeObject)
	if err != nil {
		return Reply{}, err
	}
	return replyOf(s.normalizer.Stats(raw)), nil
}

// Upcoming возвращает прошедшие проверку предстоящие запуски со счётчиками
func (s *Service) Upcoming(ctx context.Context) (Reply, error) {
	raw, err := s.fetch(ctx, endpoint.KindUpcoming, upstream.ShapeArray)
	if err != nil {
		return Reply{}, err
	}
	return replyOf(s.normalizer.UpcomingList(raw)), nil
}

// UpcomingStats считает сводку по полному сырому набору предстоящих запусков
func (s *Service) UpcomingStats(ctx context.Context) (Reply, error) {
	raw, err := s.fetch(ctx, endpoint.KindUpcoming, upstream.ShapeArray)
	if err != nil {
		return Reply{}, err
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return Reply{}, apperr.New(apperr.KindInvalidPayload, endpoint.KindUpcoming.String(), err)
	}
	records := make([]map[string]any, len(items))
	for i, item := range items {
		if m, ok := item.(map[string]any); ok {
			records[i] = m
		}
	}
	return Reply{Data: aggregate.Summarize(records)}, nil
}

// UpcomingByID ищет предстоящий запуск по числовому id
func (s *Service) UpcomingByID(ctx context.Context, id int) (Reply, error) {
	raw, err := s.fetch(ctx, endpoint.KindUpcoming, upstream.ShapeArray)
	if err != nil {
		return Reply{}, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return Reply{}, apperr.New(apperr.KindInvalidPayload, endpoint.KindUpcoming.String(), err)
	}
	for _, item := range items {
		var probe struct {
			ID json.Number `json:"id"`
		}
		if json.Unmarshal(item, &probe) != nil {
			continue
		}
		if got, err := probe.ID.Int64(); err == nil && got == int64(id) {
			return replyOf(s.normalizer.Upcoming(item)), nil
		}
	}
	return Reply{}, apperr.New(apperr.KindNotFound, endpoint.KindUpcoming.String(), ErrLaunchNotFound)
}

// Launches возвращает прошедшие запуски, при необходимости отсортированные
// по дате и времени
func (s *Service) Launches(ctx context.Context, opts aggregate.SortOptions) (Reply, error) {
	raw, err := s.fetch(ctx, endpoint.KindLaunches, upstream.ShapeArray)
	if err != nil {
		return Reply{}, err
	}

	res := s.normalizer.LaunchList(raw)
	if opts.ByDateTime && res.Outcome == normalize.Validated {
		res.Record.Launches = aggregate.SortByLaunchDateTime(res.Record.Launches, models.Launch.DateTime, opts.Descending, s.logger)
	}
	return replyOf(res), nil
}

// Launch возвращает детальную запись запуска. link проверяется до
// обращения к upstream.
func (s *Service) Launch(ctx context.Context, link string) (Reply, error) {
	url, err := s.resolver.ResolveLaunch(link)
	if err != nil {
		return Reply{}, err
	}
	raw, err := s.fetcher.Fetch(ctx, endpoint.KindLaunchDetail, url, upstream.ShapeObject)
	if err != nil {
		return Reply{}, err
	}
	return replyOf(s.normalizer.Launch(raw)), nil
}

// Dragon возвращает кадр телеметрии с ключами провайдера
func (s *Service) Dragon(ctx context.Context) (Reply, error) {
	raw, err := s.fetch(ctx, endpoint.KindDragon, upstream.ShapeObject)
	if err != nil {
		return Reply{}, err
	}
	return replyOf(s.normalizer.Dragon(raw)), nil
}

// DragonSummary возвращает производное представление телеметрии
func (s *Service) DragonSummary(ctx context.Context) (Reply, error) {
	raw, err := s.fetch(ctx, endpoint.KindDragon, upstream.ShapeObject)
	if err != nil {
		return Reply{}, err
	}

	var frame models.TelemetryFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return Reply{}, apperr.New(apperr.KindInvalidPayload, endpoint.KindDragon.String(), err)
	}
	internal := normalize.ToInternal(frame)
	return Reply{
		Data:     normalize.Summarize(internal, s.now()),
		Warnings: normalize.ValidateFrame(internal),
	}, nil
}
