package domain

// Tuning - игровые константы, вынесенные в конфигурацию.
// Значения по умолчанию совпадают с каноническим балансом.
type Tuning struct {
	// Шумовое излучение за действие.
	NoiseMove int `yaml:"noise_move"`
	NoiseHit  int `yaml:"noise_hit"`

	// Базовая цена рывка (уменьшается силой).
	ChargeBaseCost int `yaml:"charge_base_cost"`

	// Восстановление выносливости за ожидание.
	WaitRegenSP int `yaml:"wait_regen_sp"`

	// Перезарядка за операции с инвентарем.
	EquipBodyCooldown int `yaml:"equip_body_cooldown"`
	EquipCooldown     int `yaml:"equip_cooldown"`
	UseCooldown       int `yaml:"use_cooldown"`
}

// DefaultTuning возвращает канонические значения.
func DefaultTuning() Tuning {
	return Tuning{
		NoiseMove:         2,
		NoiseHit:          7,
		ChargeBaseCost:    10,
		WaitRegenSP:       1,
		EquipBodyCooldown: 4,
		EquipCooldown:     2,
		UseCooldown:       2,
	}
}

// Rules - действующие игровые константы. Назначаются один раз на старте
// (engine.Config) до запуска симуляции; дальше только читаются.
var Rules = DefaultTuning()
