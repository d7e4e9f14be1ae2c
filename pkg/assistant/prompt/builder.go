package prompt

import (
	"strings"

	"structai-be/internal/constant"
)

// basePolicy is the immutable instruction prefix shared by every role. It
// scopes the model to the structural-codes domain and forbids invented
// clause numbers.
const basePolicy = `Ты — справочный ассистент StructAI по Еврокодам (СП РК EN) и расчёту строительных конструкций.
Отвечай только на вопросы, относящиеся к нормам проектирования, нагрузкам, комбинациям и расчёту конструкций.
Если вопрос вне этой области, вежливо откажись и предложи задать вопрос по Еврокодам.
Никогда не выдумывай номера пунктов, формул и таблиц: если точной ссылки нет, так и скажи.`

var roleSuffixes = map[string]string{
	constant.RoleStudent:   "Объясняй простым языком, шаг за шагом, как студенту: сначала суть, затем формула, затем короткий пример.",
	constant.RoleEngineer:  "Отвечай профессионально и технически точно, как практикующему инженеру: термины норм, ссылки на разделы, без лишних упрощений.",
	constant.RoleOldschool: "Отвечай технически точно и дополнительно сопоставляй требования Еврокодов с привычными положениями СНиП, отмечая отличия.",
}

// ForRole returns the system instruction for the given role. The mapping is
// total: an unknown or empty role gets the engineer suffix. Output is
// byte-stable for identical input.
func ForRole(role string) string {
	suffix, ok := roleSuffixes[role]
	if !ok {
		suffix = roleSuffixes[constant.RoleDefault]
	}

	var b strings.Builder
	b.WriteString(basePolicy)
	b.WriteString("\n\n")
	b.WriteString(suffix)
	return b.String()
}

// BasePolicy exposes the shared prefix so callers can assert on it.
func BasePolicy() string {
	return basePolicy
}
