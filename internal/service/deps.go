package service

//go:generate mockgen -source=deps.go -destination=mock_deps.go -package=service

import (
	"context"
	"encoding/json"

	"github.com/ridwaanhall/SpaceX/internal/endpoint"
	"github.com/ridwaanhall/SpaceX/internal/upstream"
)

// Resolver определяет интерфейс восстановления адресов upstream
type Resolver interface {
	// Resolve возвращает адрес ресурса
	Resolve(kind endpoint.Kind) (string, error)
	// ResolveLaunch проверяет link и возвращает адрес детальной записи запуска
	ResolveLaunch(link string) (string, error)
}

// Fetcher определяет интерфейс получения сырых данных у провайдера
type Fetcher interface {
	// Fetch выполняет один запрос и проверяет форму ответа
	Fetch(ctx context.Context, kind endpoint.Kind, url string, shape upstream.Shape) (json.RawMessage, error)
}
