// Package endpoint восстанавливает адреса upstream-ресурсов из зашифрованных
// токенов Fernet. Ключ выводится из секрета процесса при каждом обращении,
// расшифрованные адреса нигде не кэшируются и не попадают в логи.
package endpoint

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ridwaanhall/SpaceX/internal/apperr"
	"go.uber.org/zap"
)

// Kind определяет логический ресурс upstream
type Kind string

const (
	KindStats        Kind = "stats"
	KindUpcoming     Kind = "upcoming"
	KindLaunches     Kind = "launches"
	KindLaunchDetail Kind = "launch-detail"
	KindDragon       Kind = "dragon-telemetry"
)

// Kinds перечисляет все известные ресурсы
var Kinds = []Kind{KindStats, KindUpcoming, KindLaunches, KindLaunchDetail, KindDragon}

// String возвращает имя ресурса
func (k Kind) String() string {
	return string(k)
}

// ParseKind преобразует строку в Kind
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown resource kind %q", s)
}

// bundled содержит токены, поставляемые вместе с сервисом.
// Для launch-detail токен задаётся только через файл endpoints.
var bundled = map[Kind]string{
	KindStats:    "gAAAAABotc_VnohHocfLezez5cPjv1PfU5GhcpZfItTAxHEaseyd5svgvZGZlwmuBAtlICiAaVGqLZmVqQNwCi_Dq43UqrwCELpWVY1K9ZwhxS7kIYA_5R8ijoHru1-IPE0mFJosjiC_QZqsRatVvlv0zHcoqpLFm2sroOciihWCrO_eiYO5fKY=",
	KindUpcoming: "gAAAAABotdJZNB02tWhl-EeJ_c4nqzsZV2m2paTBK7GNs6MeGyDuUd_83mBfICcDSC65rUraQ_1VOhYwGDbnYiZreqxy_JLUVxf4wcRF7CzuR7-6rZe6lwzaA9VCQpfA10q6HR_HJHtjiF1O4T8tdvmDEn_DutgYaPof252FMXaCMxmLBhriVRU=",
	KindLaunches: "gAAAAABotdgnMa5IuX_1uk7RhNLrojiAhUigJo_lfJt8izk6hZ-Huc92Kr3P57udOx1dJ3bHyfbCXmUpWfNi-sSF6BPfgfnZ5pRnabt6eVn7cnA7NsvaNmeCVUl-KKDdsGGJGZpa6TUWhxPXPdVkLfq00UvLf-TpsVacm0nj4aaMVmH1vIYXKnw=",
	KindDragon:   "gAAAAABotrmqp-JXGFGsqDeNoqe60jXfvMcNCBjcehb-RdvkkdBMxwfTUqgf1tJIWs6uslzFYgV00LVxNMXQYjZo1m_BX8ENEOeHUiEKNUwQEMI6SVBfcKIunOSngCWQvTk1PJcRTDbuN3BzdopOQd49dh4dsFjJ0dPix_tXDPQAawQEWooI8hU=",
}

var (
	ErrEmptySecret     = errors.New("empty secret")
	ErrNotConfigured   = errors.New("no ciphertext configured for resource")
	ErrInvalidPlainURL = errors.New("decrypted value is not an absolute http(s) URL")
)

// Bundled возвращает копию встроенных токенов
func Bundled() map[Kind]string {
	out := make(map[Kind]string, len(bundled))
	for k, v := range bundled {
		out[k] = v
	}
	return out
}

// Resolver превращает ресурс в адрес upstream
type Resolver struct {
	secret      string
	ciphertexts map[Kind]string
	logger      *zap.Logger
}

// NewResolver создаёт Resolver со встроенными токенами, поверх которых
// накладываются overrides
func NewResolver(secret string, overrides map[Kind]string, logger *zap.Logger) (*Resolver, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ciphertexts := Bundled()
	for k, v := range overrides {
		if v = strings.TrimSpace(v); v != "" {
			ciphertexts[k] = v
		}
	}
	return &Resolver{secret: secret, ciphertexts: ciphertexts, logger: logger}, nil
}

// Resolve расшифровывает адрес указанного ресурса
func (r *Resolver) Resolve(kind Kind) (string, error) {
	token, ok := r.ciphertexts[kind]
	if !ok {
		r.logger.Error("Endpoint is not configured", zap.String("resource", kind.String()))
		return "", apperr.New(apperr.KindDecryption, kind.String(), ErrNotConfigured)
	}

	plain, err := Decrypt(token, r.secret)
	if err != nil {
		r.logger.Error("Endpoint decryption failed", zap.String("resource", kind.String()), zap.Error(err))
		return "", apperr.New(apperr.KindDecryption, kind.String(), err)
	}

	parsed, err := url.Parse(plain)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		r.logger.Error("Decrypted endpoint is malformed", zap.String("resource", kind.String()))
		return "", apperr.New(apperr.KindDecryption, kind.String(), ErrInvalidPlainURL)
	}
	return plain, nil
}

// ResolveLaunch строит адрес детальной информации о запуске.
// link проверяется до расшифровки и конкатенации.
func (r *Resolver) ResolveLaunch(link string) (string, error) {
	if err := ValidateLink(link); err != nil {
		return "", apperr.New(apperr.KindValidation, KindLaunchDetail.String(), err)
	}
	base, err := r.Resolve(KindLaunchDetail)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(base, "/") + "/" + link, nil
}
