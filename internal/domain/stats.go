package domain

// Race - раса актора. Определяет базовые характеристики и описание.
type Race uint8

const (
	RaceHuman Race = iota
	RaceElf
	RaceDwarf
	RaceRat
	RaceGoblin
)

var raceNames = map[Race]string{
	RaceHuman:  "Человек",
	RaceElf:    "Эльф",
	RaceDwarf:  "Гном",
	RaceRat:    "Крыса",
	RaceGoblin: "Гоблин",
}

// Description возвращает человекочитаемое имя расы (для журналов боя).
func (r Race) Description() string {
	if name, ok := raceNames[r]; ok {
		return name
	}
	return "Нечто"
}

// Базовые характеристики рас.
var raceStats = map[Race]Stats{
	RaceHuman:  {Int: 4, Dex: 4, Str: 4, MaxHP: 10, MaxMP: 10, MaxSP: 10, Vision: 12},
	RaceElf:    {Int: 5, Dex: 5, Str: 3, MaxHP: 8, MaxMP: 12, MaxSP: 10, Vision: 14},
	RaceDwarf:  {Int: 3, Dex: 3, Str: 5, MaxHP: 12, MaxMP: 8, MaxSP: 10, Infravision: 4, Vision: 10},
	RaceRat:    {Int: 1, Dex: 4, Str: 1, MaxHP: 3, MaxMP: 0, MaxSP: 6, Infravision: 6, Vision: 8},
	RaceGoblin: {Int: 2, Dex: 3, Str: 3, MaxHP: 5, MaxMP: 2, MaxSP: 8, Infravision: 3, Vision: 10},
}

// BaseStats возвращает базовые характеристики расы.
func BaseStats(r Race) Stats {
	return raceStats[r]
}

// Stats - аддитивный вектор атрибутов. Складывается покомпонентно.
type Stats struct {
	Int         int `json:"int"`
	Dex         int `json:"dex"`
	Str         int `json:"str"`
	MaxHP       int `json:"maxHp"`
	MaxMP       int `json:"maxMp"`
	MaxSP       int `json:"maxSp"`
	AC          int `json:"ac"`
	EV          int `json:"ev"`
	Infravision int `json:"infravision"`
	Vision      int `json:"vision"`
}

func (s Stats) Add(o Stats) Stats {
	return Stats{
		Int:         s.Int + o.Int,
		Dex:         s.Dex + o.Dex,
		Str:         s.Str + o.Str,
		MaxHP:       s.MaxHP + o.MaxHP,
		MaxMP:       s.MaxMP + o.MaxMP,
		MaxSP:       s.MaxSP + o.MaxSP,
		AC:          s.AC + o.AC,
		EV:          s.EV + o.EV,
		Infravision: s.Infravision + o.Infravision,
		Vision:      s.Vision + o.Vision,
	}
}

func (s Stats) Sub(o Stats) Stats {
	return Stats{
		Int:         s.Int - o.Int,
		Dex:         s.Dex - o.Dex,
		Str:         s.Str - o.Str,
		MaxHP:       s.MaxHP - o.MaxHP,
		MaxMP:       s.MaxMP - o.MaxMP,
		MaxSP:       s.MaxSP - o.MaxSP,
		AC:          s.AC - o.AC,
		EV:          s.EV - o.EV,
		Infravision: s.Infravision - o.Infravision,
		Vision:      s.Vision - o.Vision,
	}
}

// ToEffective оборачивает базовые атрибуты в эффективные (производные
// боевые числа нулевые, их довешивают модификаторы и RecalculateStats).
func (s Stats) ToEffective() EffectiveStats {
	return EffectiveStats{Base: s}
}

// EffectiveStats - базовые атрибуты плюс производные боевые числа.
// Пересчитываются каждый тик, между тиками не хранятся.
type EffectiveStats struct {
	Base        Stats `json:"base"`
	MeleeDmg    int   `json:"meleeDmg"`
	MeleeAcc    int   `json:"meleeAcc"`
	MeleeStrReq int   `json:"meleeStrReq"`
}

func (e EffectiveStats) Add(o EffectiveStats) EffectiveStats {
	return EffectiveStats{
		Base:        e.Base.Add(o.Base),
		MeleeDmg:    e.MeleeDmg + o.MeleeDmg,
		MeleeAcc:    e.MeleeAcc + o.MeleeAcc,
		MeleeStrReq: e.MeleeStrReq + o.MeleeStrReq,
	}
}

func (e EffectiveStats) Sub(o EffectiveStats) EffectiveStats {
	return EffectiveStats{
		Base:        e.Base.Sub(o.Base),
		MeleeDmg:    e.MeleeDmg - o.MeleeDmg,
		MeleeAcc:    e.MeleeAcc - o.MeleeAcc,
		MeleeStrReq: e.MeleeStrReq - o.MeleeStrReq,
	}
}
