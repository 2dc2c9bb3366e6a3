package availability

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// ResolutionStep шаг, на котором была выбрана эффективная длительность
type ResolutionStep string

const (
	// StepRequested запрошенная длительность валидна и имеет даты
	StepRequested ResolutionStep = "requested"
	// StepDefault длительность по умолчанию имеет даты
	StepDefault ResolutionStep = "default"
	// StepPriority первая длительность с датами в порядке приоритета
	StepPriority ResolutionStep = "priority"
	// StepEmptyDefault ни у одной длительности нет дат, возвращается длительность по умолчанию
	StepEmptyDefault ResolutionStep = "empty_default"
)

// ResolutionOrder порядок проверки шагов. Первый подходящий шаг побеждает
var ResolutionOrder = []ResolutionStep{StepRequested, StepDefault, StepPriority, StepEmptyDefault}

// ResolveDuration выбирает длительность, под которой показывать календарь специалиста.
// requested может быть пустым или невалидным, тогда он игнорируется.
// Функция чистая: одинаковые входные данные дают одинаковый результат
func ResolveDuration(p *domain.Professional, requested string) (domain.Duration, ResolutionStep) {
	if d, ok := domain.ParseDuration(requested); ok && p.Availability.HasEntries(d) {
		return d, StepRequested
	}

	if p.Availability.HasEntries(p.DefaultDuration) {
		return p.DefaultDuration, StepDefault
	}

	for _, d := range domain.DurationPriority() {
		if p.Availability.HasEntries(d) {
			return d, StepPriority
		}
	}

	return p.DefaultDuration, StepEmptyDefault
}
