package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер. Вызывается один раз при
// старте приложения (и в TestMain пакетных тестов).
func Init() {
	Log = logrus.New()

	// Уровень логирования берем из переменной окружения.
	// По умолчанию - "info", для отладки симуляции - "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// Форматтер: "json" - для продакшена и сбора логов,
	// текст с цветами - для разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}
