package leaky

import "go.uber.org/zap"

const keyURL = "URL"

func log(l *zap.Logger, raw string, err error) {
	l.Info("fetch", zap.String("url", raw))          // want `zap field "url" may expose a decrypted endpoint or secret`
	l.Info("fetch", zap.Any(keyURL, raw))            // want `zap field "URL" may expose a decrypted endpoint or secret`
	l.Info("boot", zap.String("secret_key", raw))    // want `zap field "secret_key" may expose a decrypted endpoint or secret`
	l.Info("fetch", zap.String("resource", "stats")) // разрешено
	l.Info("fetch", zap.Int("status", 503), zap.Error(err))
	l.Info("url must not be a message key check")
}
