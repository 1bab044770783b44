// Минимальный пакет с сигнатурами zap для тестов анализатора
package zap

type Field struct{}

type Logger struct{}

func String(key, val string) Field { return Field{} }

func Any(key string, val interface{}) Field { return Field{} }

func Int(key string, val int) Field { return Field{} }

func Error(err error) Field { return Field{} }

func (l *Logger) Info(msg string, fields ...Field) {}
