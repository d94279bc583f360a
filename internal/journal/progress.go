package journal

import (
	"fmt"
	"math/rand"
	"strings"

	"pddtools/internal/model"
)

// DeltaLabels name the five movement bands of a metric delta.
type DeltaLabels struct {
	StrongUp   string `json:"strong_up" bson:"strong_up"`
	MildUp     string `json:"mild_up" bson:"mild_up"`
	None       string `json:"none" bson:"none"`
	MildDown   string `json:"mild_down" bson:"mild_down"`
	StrongDown string `json:"strong_down" bson:"strong_down"`
}

// ProgressTemplates is the configurable copy of the progress
// check-in dialogue and its result text.
type ProgressTemplates struct {
	Metrics         []model.MetricDef `json:"metrics" bson:"metrics"`
	FocusOptions    []string          `json:"focus_options" bson:"focus_options"`
	DeltaLabels     DeltaLabels       `json:"delta_labels" bson:"delta_labels"`
	DynamicPositive string            `json:"dynamic_positive" bson:"dynamic_positive"`
	DynamicNegative string            `json:"dynamic_negative" bson:"dynamic_negative"`
	DynamicStable   string            `json:"dynamic_stable" bson:"dynamic_stable"`
	FocusSame       string            `json:"focus_same" bson:"focus_same"`
	FocusChanged    string            `json:"focus_changed" bson:"focus_changed"`
	Conclusions     []string          `json:"conclusions" bson:"conclusions"`
	FirstEntry      string            `json:"first_entry" bson:"first_entry"`
	StartMessage    string            `json:"start_message" bson:"start_message"`
}

func deltaLabel(delta int, labels DeltaLabels) string {
	switch {
	case delta >= 2:
		return labels.StrongUp
	case delta == 1:
		return labels.MildUp
	case delta == 0:
		return labels.None
	case delta == -1:
		return labels.MildDown
	default:
		return labels.StrongDown
	}
}

func deltaSign(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("+%d", delta)
	}
	return fmt.Sprintf("%d", delta)
}

// BuildProgressResult composes the comparison text for a new
// check-in against the previous one. A nil prev produces the
// first-entry text. The rng varies the closing conclusion once the
// user has three or more entries.
func BuildProgressResult(entry model.ProgressEntry, prev *model.ProgressEntry, tpl *ProgressTemplates, totalEntries int, rng *rand.Rand) string {
	var lines []string

	if prev == nil {
		lines = append(lines, tpl.FirstEntry, "")
		lines = append(lines, fmt.Sprintf("Фокус: %s", entry.MainFocus))
		if entry.KeyThought != "" {
			lines = append(lines, fmt.Sprintf("Мысль: %s", entry.KeyThought))
		}
		lines = append(lines, "", tpl.Conclusions[2])
		return strings.Join(lines, "\n")
	}

	lines = append(lines, "📊 Сравнение с предыдущей записью\n")
	grew, fell, same := 0, 0, 0
	for _, m := range tpl.Metrics {
		cur := int(entry.Values[m.Key])
		prv := int(prev.Values[m.Key])
		d := cur - prv
		lines = append(lines, fmt.Sprintf("%s: %d → %d (%s) — %s", m.Label, prv, cur, deltaSign(d), deltaLabel(d, tpl.DeltaLabels)))
		switch {
		case d > 0:
			grew++
		case d < 0:
			fell++
		default:
			same++
		}
	}

	lines = append(lines, "", "📈 Общая динамика\n")
	switch {
	case grew > fell && grew > same:
		lines = append(lines, tpl.DynamicPositive)
	case fell > grew && fell > same:
		lines = append(lines, tpl.DynamicNegative)
	default:
		lines = append(lines, tpl.DynamicStable)
	}
	lines = append(lines, fmt.Sprintf("Выросло: %d  ·  Снизилось: %d  ·  Без изменений: %d", grew, fell, same))

	lines = append(lines, "", "🔁 Фокус\n")
	if entry.MainFocus == prev.MainFocus {
		lines = append(lines, tpl.FocusSame)
	} else {
		lines = append(lines, tpl.FocusChanged)
	}
	lines = append(lines, fmt.Sprintf("Текущий фокус: %s", entry.MainFocus))

	lines = append(lines, "", "🧭 Итог\n")
	idx := 2
	if totalEntries >= 3 {
		idx = rng.Intn(2)
	}
	lines = append(lines, tpl.Conclusions[idx])

	return strings.Join(lines, "\n")
}
