package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"hexcrawl-server/internal/domain"
)

// Config хранит параметры запуска движка.
type Config struct {
	// Seed - мастер-зерно. Зерно уровня N = Seed + N.
	Seed int64

	// TargetTileCount - желаемый размер уровня для генератора.
	TargetTileCount int
}

// NewConfig создает конфиг по умолчанию (случайное зерно).
func NewConfig() Config {
	return Config{
		Seed:            time.Now().UnixNano(),
		TargetTileCount: 400,
	}
}

// LoadTuning читает игровые константы из YAML-файла и делает их
// действующими. Отсутствующие в файле поля остаются каноническими.
// Вызывается один раз на старте, до создания инстанса.
func LoadTuning(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	t := domain.DefaultTuning()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}

	domain.Rules = t
	return nil
}
