// Command urlcrypt шифрует адрес upstream-ресурса в токен Fernet для файла
// endpoints и расшифровывает токен для проверки.
//
// Использование:
//
//	urlcrypt -s <secret> https://example.com/api/stats
//	urlcrypt -s <secret> -d gAAAAA...
//
// Секрет также берётся из переменной окружения SECRET_KEY.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ridwaanhall/SpaceX/internal/endpoint"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage: urlcrypt [-s secret] [-d] <url-or-token>")

func main() {
	if err := run(os.Args[1:], os.Getenv, os.Stdout); err != nil {
		logger, _ := zap.NewDevelopment()
		logger.Fatal("urlcrypt failed", zap.Error(err))
	}
}

// run выполняет команду и пишет результат в out
func run(args []string, getenv func(string) string, out io.Writer) error {
	flags := flag.NewFlagSet("urlcrypt", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	secret := flags.String("s", "", "secret key (defaults to SECRET_KEY)")
	decrypt := flags.Bool("d", false, "decrypt a token instead of encrypting a URL")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *secret == "" {
		*secret = getenv("SECRET_KEY")
	}
	if *secret == "" {
		return endpoint.ErrEmptySecret
	}
	if flags.NArg() != 1 {
		return errUsage
	}
	value := strings.TrimSpace(flags.Arg(0))

	var result string
	var err error
	if *decrypt {
		result, err = endpoint.Decrypt(value, *secret)
	} else {
		result, err = encrypt(value, *secret)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, result)
	return err
}

// encrypt проверяет, что значение - абсолютный http(s) адрес, и шифрует его
func encrypt(rawURL, secret string) (string, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "", endpoint.ErrInvalidPlainURL
	}
	return endpoint.Encrypt(rawURL, secret)
}
