package usecase

import (
	"fmt"
	"time"

	"fleet-dashboard-service/internal/dashboard/core/domain"
)

// RiskPolicy holds the hand-tuned weights and thresholds used for the risk
// score, driver badges and behavior tiers.
type RiskPolicy struct {
	FatigueWeight  float64
	SpeedingWeight float64
	PanicWeight    float64
	ScoreScale     float64
	ScoreCap       float64

	// Driver badge thresholds, inclusive.
	CriticalDriverEvents  int
	HighRiskDriverEvents  int
	AttentionDriverEvents int

	// Behavior thresholds, exclusive.
	PhoneUseCritical   int
	EyesClosedCritical int
	YawnAttention      int
}

func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{
		FatigueWeight:  1.5,
		SpeedingWeight: 1.2,
		PanicWeight:    2,
		ScoreScale:     2,
		ScoreCap:       10,

		CriticalDriverEvents:  30,
		HighRiskDriverEvents:  20,
		AttentionDriverEvents: 10,

		PhoneUseCritical:   5,
		EyesClosedCritical: 3,
		YawnAttention:      3,
	}
}

// DriverBadge maps a driver's event count to a badge.
func (p RiskPolicy) DriverBadge(events int) domain.Badge {
	switch {
	case events >= p.CriticalDriverEvents:
		return domain.BadgeCritical
	case events >= p.HighRiskDriverEvents:
		return domain.BadgeHighRisk
	case events >= p.AttentionDriverEvents:
		return domain.BadgeAttention
	default:
		return domain.BadgeModerate
	}
}

// Score is min(cap, weighted incidents / max(total,1) * scale), one decimal.
func (p RiskPolicy) Score(fatigue, speeding, panic, total int) float64 {
	if total < 1 {
		total = 1
	}
	weighted := float64(fatigue)*p.FatigueWeight +
		float64(speeding)*p.SpeedingWeight +
		float64(panic)*p.PanicWeight
	score := weighted / float64(total) * p.ScoreScale
	if score > p.ScoreCap {
		score = p.ScoreCap
	}
	return round1(score)
}

type behaviorKind int

const (
	behaviorPhoneUse behaviorKind = iota
	behaviorEyesClosed
	behaviorYawn
	behaviorPersonDetected
	behaviorIncorrectPosture
	behaviorPanic
	behaviorFalsePositive
	behaviorNone
)

func (p RiskPolicy) behaviorTier(kind behaviorKind, count int) domain.RiskTier {
	switch kind {
	case behaviorPhoneUse:
		if count > p.PhoneUseCritical {
			return domain.RiskCritical
		}
		return domain.RiskHigh
	case behaviorEyesClosed:
		if count > p.EyesClosedCritical {
			return domain.RiskCritical
		}
		return domain.RiskHigh
	case behaviorYawn:
		if count > p.YawnAttention {
			return domain.RiskAttention
		}
		return domain.RiskModerate
	case behaviorPersonDetected:
		return domain.RiskModerate
	case behaviorIncorrectPosture:
		if count > 0 {
			return domain.RiskAttention
		}
		return domain.RiskLow
	case behaviorPanic:
		if count > 0 {
			return domain.RiskCritical
		}
		return domain.RiskLow
	default:
		return domain.RiskLow
	}
}

// Catalog holds the display strings of one locale.
type Catalog struct {
	UnidentifiedEvent  string
	UnidentifiedDriver string
	Months             [12]string
	Badges             map[domain.Badge]string
	Risks              map[domain.RiskTier]string
	Behaviors          map[behaviorKind]string
}

const (
	LocaleEnglish    = "en"
	LocalePortuguese = "pt-BR"
)

var catalogs = map[string]Catalog{
	LocaleEnglish: {
		UnidentifiedEvent:  "unidentified",
		UnidentifiedDriver: "unidentified driver",
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		Badges: map[domain.Badge]string{
			domain.BadgeCritical:  "Critical",
			domain.BadgeHighRisk:  "High Risk",
			domain.BadgeAttention: "Attention",
			domain.BadgeModerate:  "Moderate",
		},
		Risks: map[domain.RiskTier]string{
			domain.RiskCritical:  "Critical",
			domain.RiskHigh:      "High",
			domain.RiskAttention: "Attention",
			domain.RiskModerate:  "Moderate",
			domain.RiskLow:       "Low",
		},
		Behaviors: map[behaviorKind]string{
			behaviorPhoneUse:         "Phone use",
			behaviorEyesClosed:       "Eyes closed",
			behaviorYawn:             "Yawn detected",
			behaviorPersonDetected:   "Person detected",
			behaviorIncorrectPosture: "Incorrect posture",
			behaviorPanic:            "Panic triggered",
			behaviorFalsePositive:    "False positives",
			behaviorNone:             "No recent records",
		},
	},
	LocalePortuguese: {
		UnidentifiedEvent:  "Evento não identificado",
		UnidentifiedDriver: "Motorista não identificado",
		Months: [12]string{
			"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
			"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
		},
		Badges: map[domain.Badge]string{
			domain.BadgeCritical:  "Crítico",
			domain.BadgeHighRisk:  "Alto Risco",
			domain.BadgeAttention: "Atenção",
			domain.BadgeModerate:  "Moderado",
		},
		Risks: map[domain.RiskTier]string{
			domain.RiskCritical:  "Crítico",
			domain.RiskHigh:      "Alto",
			domain.RiskAttention: "Atenção",
			domain.RiskModerate:  "Moderado",
			domain.RiskLow:       "Baixo",
		},
		Behaviors: map[behaviorKind]string{
			behaviorPhoneUse:         "Uso de celular",
			behaviorEyesClosed:       "Olhos fechados",
			behaviorYawn:             "Bocejo detectado",
			behaviorPersonDetected:   "Pessoa detectada",
			behaviorIncorrectPosture: "Postura incorreta",
			behaviorPanic:            "Pânico acionado",
			behaviorFalsePositive:    "Falsos positivos",
			behaviorNone:             "Sem registros recentes",
		},
	},
}

// LookupCatalog returns the catalog for a locale tag.
func LookupCatalog(locale string) (Catalog, error) {
	c, ok := catalogs[locale]
	if !ok {
		return Catalog{}, fmt.Errorf("unsupported locale %q", locale)
	}
	return c, nil
}

func (c Catalog) monthName(m time.Month) string {
	return c.Months[m-1]
}
