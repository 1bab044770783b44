// Package middleware содержит HTTP middleware для обработки запросов.
// Включает идентификатор запроса, логирование, восстановление после паники и
// сжатие ответов.
package middleware
