package seed

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Идентификаторы демо-специалистов
const (
	DemoCamilaID   = "f4b3ad70-3d4a-4f1e-b613-35283b8b67f1"
	DemoPedroID    = "0fbb9e8d-cc12-4b3c-8d80-8a93bd2c3ab4"
	DemoSofiaID    = "1d0339a9-95d0-4b6a-bf37-928b05c4c092"
	DemoHelenaID   = "3ab3b0f6-4e10-4cc2-9fd4-74f2bda1f5b1"
	DemoViniciusID = "58e46858-3f52-4a35-a95d-e7311b4234cf"
)

const demoAvatarURL = "/placeholder.svg"

// DemoLoader демонстрационные данные; даты считаются смещениями от BaseDate
type DemoLoader struct {
	BaseDate time.Time
}

// NewDemoLoader создает загрузчик демо-данных. Нулевая baseDate означает "сегодня"
func NewDemoLoader(baseDate time.Time) *DemoLoader {
	if baseDate.IsZero() {
		baseDate = time.Now()
	}
	return &DemoLoader{BaseDate: baseDate}
}

// Load возвращает демо-каталог
func (l *DemoLoader) Load(_ context.Context) (*Catalog, error) {
	return Demo(l.BaseDate), nil
}

func day(slots []string, blocked ...string) domain.DayAvailability {
	d := domain.DayAvailability{
		Slots:   make([]types.TimeString, len(slots)),
		Blocked: make([]types.TimeString, len(blocked)),
	}
	for i, s := range slots {
		d.Slots[i] = types.TimeString(s)
	}
	for i, s := range blocked {
		d.Blocked[i] = types.TimeString(s)
	}
	return d
}

func event(id, title, start string, duration domain.Duration, client, location string) domain.ScheduledEvent {
	return domain.ScheduledEvent{
		ID:         id,
		Title:      title,
		StartTime:  types.TimeString(start),
		Duration:   duration,
		ClientName: client,
		Location:   ptr.Ptr(location),
	}
}

// Demo строит демо-каталог относительно base
func Demo(base time.Time) *Catalog {
	today := types.NewDateKey(base)
	at := today.AddDays

	professionals := []*domain.Professional{
		{
			ID:              DemoCamilaID,
			Name:            "Dra. Camila Nogueira",
			Email:           "camila.nogueira@gmail.com",
			Bio:             "Дерматолог, специализация - омоложение лица и малоинвазивные процедуры.",
			Address:         "Rua Oscar Freire, 1120 • São Paulo/SP",
			AvatarURL:       demoAvatarURL,
			DefaultDuration: domain.Duration60,
			Availability: domain.AvailabilityCalendar{
				domain.Duration60: {
					at(1): day([]string{"09:00", "10:30", "14:30"}, "10:30"),
					at(4): day([]string{"08:30", "10:00", "15:00"}),
					at(7): day([]string{"09:30", "11:00", "16:00"}, "11:00"),
				},
				domain.Duration30: {
					at(1): day([]string{"09:00", "09:45", "10:30", "11:15", "15:00"}, "09:45"),
					at(3): day([]string{"08:30", "09:15", "10:00", "10:45", "11:30"}, "10:45"),
					at(6): day([]string{"13:00", "13:45", "14:30", "15:15"}, "13:45"),
				},
			},
		},
		{
			ID:              DemoPedroID,
			Name:            "Coach Pedro Azevedo",
			Email:           "pedro.azevedo@gmail.com",
			Bio:             "Карьерный коуч: переход к руководящим ролям и развитие soft skills.",
			Address:         "Av. das Nações Unidas, 14261 • São Paulo/SP",
			AvatarURL:       demoAvatarURL,
			DefaultDuration: domain.Duration30,
			Availability: domain.AvailabilityCalendar{
				domain.Duration30: {
					at(2): day([]string{"07:30", "08:15", "09:00", "09:45", "10:30"}, "09:45"),
					at(5): day([]string{"08:00", "08:45", "09:30", "10:15", "11:00"}, "10:15"),
					at(8): day([]string{"14:00", "14:45", "15:30", "16:15"}, "15:30"),
				},
				domain.Duration60: {
					at(2): day([]string{"08:00", "09:15", "11:00", "14:00"}, "09:15"),
					at(6): day([]string{"09:00", "10:30", "13:00"}, "10:30"),
				},
			},
		},
		{
			ID:              DemoSofiaID,
			Name:            "Arq. Sofia Martins",
			Email:           "sofia.martins@gmail.com",
			Bio:             "Архитектор жилых интерьеров: функциональные и экологичные пространства.",
			Address:         "Rua Iaiá, 340 • São Paulo/SP",
			AvatarURL:       demoAvatarURL,
			DefaultDuration: domain.Duration60,
			Availability: domain.AvailabilityCalendar{
				domain.Duration60: {
					at(3): day([]string{"10:00", "11:30", "15:30"}, "11:30"),
					at(9): day([]string{"09:00", "10:30", "14:30"}, "14:30"),
				},
				domain.Duration30: {
					at(3): day([]string{"09:30", "10:15", "11:00", "14:00"}, "10:15"),
					at(9): day([]string{"08:45", "09:30", "10:15", "13:30", "14:15"}, "13:30"),
				},
			},
		},
		{
			ID:              DemoHelenaID,
			Name:            "Chef Helena Paiva",
			Email:           "helena.paiva@gmail.com",
			Bio:             "Гастрономический консультант для авторских ресторанов и сезонных меню.",
			Address:         "Rua Borges Lagoa, 732 • São Paulo/SP",
			AvatarURL:       demoAvatarURL,
			DefaultDuration: domain.Duration30,
			Availability: domain.AvailabilityCalendar{
				domain.Duration30: {
					at(4):  day([]string{"16:00", "16:45", "17:30", "18:15"}, "17:30"),
					at(10): day([]string{"15:00", "15:45", "16:30", "17:15"}, "15:45"),
				},
				domain.Duration60: {
					at(4):  day([]string{"16:00", "17:15", "18:30"}, "17:15"),
					at(10): day([]string{"15:00", "16:30", "18:00"}, "16:30"),
				},
			},
		},
		{
			ID:              DemoViniciusID,
			Name:            "Dr. Vinícius Sampaio",
			Email:           "vinicius.sampaio@gmail.com",
			Bio:             "Спортивный физиотерапевт: ускоренная реабилитация для спортсменов-любителей.",
			Address:         "Av. Brigadeiro Faria Lima, 3900 • São Paulo/SP",
			AvatarURL:       demoAvatarURL,
			DefaultDuration: domain.Duration60,
			Availability: domain.AvailabilityCalendar{
				domain.Duration60: {
					at(5):  day([]string{"07:00", "08:30", "10:00", "15:00"}, "08:30"),
					at(11): day([]string{"09:00", "10:30", "12:00", "16:00"}, "10:30"),
				},
				domain.Duration30: {
					at(5): day([]string{"07:00", "07:45", "08:30", "10:00", "10:45"}, "08:30"),
					at(8): day([]string{"09:00", "09:45", "10:30", "11:15", "13:00"}, "11:15"),
				},
			},
		},
	}

	events := map[string]EventsByDate{
		DemoCamilaID: {
			at(0): {
				event("camila-1", "Дерматологическая консультация", "09:00", domain.Duration60, "Mariana Lopes", "Online"),
				event("camila-2", "Процедура: пилинг", "11:00", domain.Duration60, "Carla Dias", "Online"),
				event("camila-3", "Повторный прием", "16:00", domain.Duration30, "Daniel Batista", "Online"),
			},
			at(1): {
				event("camila-4", "Первичная оценка", "09:00", domain.Duration60, "Evelyn Castro", "Online"),
				event("camila-5", "Телемедицинская консультация", "14:30", domain.Duration30, "Giovana Prado", "Online"),
			},
		},
		DemoPedroID: {
			at(0): {
				event("pedro-1", "Менторинг: карьерный план", "08:00", domain.Duration60, "Lucas Farias", "Online"),
				event("pedro-2", "Сессия executive-коучинга", "10:30", domain.Duration60, "Bruna Freire", "Online"),
				event("pedro-3", "Обратная связь после повышения", "15:00", domain.Duration30, "Henrique Souza", "Online"),
			},
			at(2): {
				event("pedro-4", "Воркшоп по лидерству", "09:00", domain.Duration60, "Time Nubia", "Online"),
			},
		},
		DemoSofiaID: {
			at(0): {
				event("sofia-1", "Брифинг по квартире", "10:00", domain.Duration60, "Família Costa", "Офис"),
				event("sofia-2", "Презентация планировки", "14:00", domain.Duration60, "Camila Ramos", "Online"),
			},
			at(3): {
				event("sofia-3", "Технический выезд", "09:30", domain.Duration60, "Obra Moema", "На объекте"),
			},
		},
		DemoHelenaID: {
			at(0): {
				event("helena-1", "Ревизия сезонного меню", "16:00", domain.Duration60, "Rest. Casa Verde", "Ресторан"),
				event("helena-2", "Консультация по операционке", "18:30", domain.Duration30, "Bistrô Tartufo", "Online"),
			},
			at(4): {
				event("helena-3", "Обучение команды", "15:00", domain.Duration60, "Equipe La Cocina", "Ресторан"),
			},
		},
		DemoViniciusID: {
			at(0): {
				event("vinicius-1", "Оценка после травмы", "07:00", domain.Duration60, "João Victor", "Клиника"),
				event("vinicius-2", "Реабилитационная сессия", "09:00", domain.Duration60, "Amanda Silva", "Клиника"),
				event("vinicius-3", "Функциональная тренировка", "15:00", domain.Duration30, "Equipe RunSP", "Спортзал"),
			},
			at(5): {
				event("vinicius-4", "Еженедельное сопровождение", "09:00", domain.Duration60, "Pedro Lourenço", "Клиника"),
			},
		},
	}

	return &Catalog{Professionals: professionals, Events: events}
}
