package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой "снимок" мира, видимого для конкретного актора,
// и отправляется в начале каждого хода этого актора.
type ServerResponse struct {
	// Type тип сообщения. "UPDATE" для снимков мира, "DEAD" для финального
	// сообщения после гибели актора.
	Type string `json:"type"`

	// Turn текущий номер тика. Увеличивается с каждым тиком.
	Turn uint64 `json:"turn"`

	// Level номер текущего уровня подземелья, начиная с нуля.
	Level int `json:"level"`

	// Me состояние актора, которым управляет данный клиент.
	Me *ActorView `json:"me,omitempty"`

	// Map срез всех известных актору тайлов (видимых и запомненных).
	Map []TileView `json:"map,omitempty"`

	// Actors срез всех видимых акторов, кроме собственного.
	Actors []ActorView `json:"actors,omitempty"`

	// Items видимые предметы на полу.
	Items []ItemView `json:"items,omitempty"`

	// Noises источники шума, услышанные за прошлый тик.
	Noises []NoiseView `json:"noises,omitempty"`

	// Logs записи боевого лога, накопленные с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`
}

// TileView это DTO для одного гексагонального тайла.
type TileView struct {
	Q int `json:"q"`
	R int `json:"r"`

	// Kind тип тайла: "empty", "wall", "door", "tree".
	Kind string `json:"kind"`

	// DoorOpen имеет смысл только для дверей.
	DoorOpen bool `json:"doorOpen,omitempty"`

	// Stairs true, если на тайле лестница вниз.
	Stairs bool `json:"stairs,omitempty"`

	// Light итоговая освещенность тайла.
	Light int `json:"light"`

	// IsVisible true, если тайл в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsKnown true, если тайл известен с прошлых ходов ("туман войны").
	IsKnown bool `json:"isKnown"`

	// Area название именованной зоны, если тайл открыл ее центр.
	Area string `json:"area,omitempty"`
}

// ActorView это DTO для игрового актора.
type ActorView struct {
	ID   uint32 `json:"id"`
	Race string `json:"race"`

	Q   int    `json:"q"`
	R   int    `json:"r"`
	Dir string `json:"dir"`

	// Stats характеристики актора. Отсутствует (omitempty) для чужих
	// акторов: клиент не имеет права видеть чужие статы.
	Stats *StatsView `json:"stats,omitempty"`

	// Backpack и Equipment присылаются только для собственного актора.
	Backpack  []SlottedItemView `json:"backpack,omitempty"`
	Equipment []SlottedItemView `json:"equipment,omitempty"`
}

// StatsView это DTO для характеристик актора.
type StatsView struct {
	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
	MP    int `json:"mp"`
	MaxMP int `json:"maxMp"`
	SP    int `json:"sp"`
	MaxSP int `json:"maxSp"`

	Str int `json:"str"`
	Dex int `json:"dex"`
	Int int `json:"int"`

	AC int `json:"ac"`
	EV int `json:"ev"`

	ActionCooldown int  `json:"actionCooldown"`
	IsDead         bool `json:"isDead"`
}

// ItemView представляет предмет на полу.
type ItemView struct {
	Q    int    `json:"q"`
	R    int    `json:"r"`
	Name string `json:"name"`
	Kind string `json:"kind"` // weapon, armor, consumable
}

// SlottedItemView представляет предмет в рюкзаке или на теле.
type SlottedItemView struct {
	Letter string `json:"letter"` // буква рюкзака либо имя слота экипировки
	Name   string `json:"name"`
	Kind   string `json:"kind"`
}

// NoiseView представляет один услышанный источник шума.
type NoiseView struct {
	Q    int    `json:"q"`
	R    int    `json:"r"`
	Race string `json:"race"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия: WAIT, TURN, MOVE, CHARGE, SPIN, PICK,
	// EQUIP, DESCEND, FIRE.
	Action string `json:"action"`

	// Payload JSON-объект с данными действия. Структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// LoginPayload используется для первого сообщения сессии (LOGIN).
type LoginPayload struct {
	// Race раса персонажа: human, elf, dwarf. Пустая строка - human.
	Race string `json:"race,omitempty"`
}

// AnglePayload используется для действий с относительным углом
// (TURN, MOVE, SPIN).
type AnglePayload struct {
	// Angle один из: forward, right, rightback, back, leftback, left.
	Angle string `json:"angle"`
}

// LetterPayload используется для EQUIP: буква предмета в рюкзаке.
type LetterPayload struct {
	Letter string `json:"letter"`
}

// TargetPayload используется для FIRE: координата цели.
type TargetPayload struct {
	Q int `json:"q"`
	R int `json:"r"`
}
