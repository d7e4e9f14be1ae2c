package navigation

import (
	"context"

	"structai-be/internal/constant"
	"structai-be/pkg/assistant/session"
)

// RoleStore persists the selected role tag.
type RoleStore interface {
	SetRole(ctx context.Context, userId int64, role string) error
}

// ContentStore resolves a content key to reference text.
type ContentStore interface {
	GetContent(ctx context.Context, key string) (string, bool)
}

type Logger interface {
	Info(module, message string, details map[string]interface{})
	Warn(module, message string, details map[string]interface{})
	Error(module, message string, details map[string]interface{})
}

// Machine drives the menu tree. Input is an opaque action token plus the
// conversation state; output is always a Render. Unknown or malformed
// tokens degrade to placeholder renders, never to errors.
type Machine struct {
	roles   RoleStore
	content ContentStore
	logger  Logger
}

func NewMachine(roles RoleStore, content ContentStore, logger Logger) *Machine {
	return &Machine{
		roles:   roles,
		content: content,
		logger:  logger,
	}
}

const welcomeText = "Добро пожаловать в StructAI.\n" +
	"Это учебный и справочный бот по Еврокодам (СП РК EN).\n\n" +
	"Здесь вы можете быстро найти разделы нормативов, формулы, " +
	"комбинации нагрузок и основные положения расчёта, а также задать " +
	"вопрос интеллектуальному помощнику по Еврокодам.\n\n" +
	"Цель бота — упростить изучение Еврокодов и сделать работу с ними " +
	"более удобной и понятной.\n\n" +
	"Пожалуйста, ответьте, кто Вы?"

// Root renders the start menu: three roles plus suggestions.
func (m *Machine) Root() *Render {
	return &Render{
		Text: welcomeText,
		Buttons: [][]Button{
			row("🎓 Студент", "user_student"),
			row("🏗 Практикующий инженер", "user_engineer"),
			row("📐 Инженер старой школы", "user_oldschool"),
			row("💬 Предложения", TokenSuggestions),
		},
	}
}

// Handle processes one action token. It may flip a session flag and, for
// role tokens, persists the role as a side effect.
func (m *Machine) Handle(ctx context.Context, userId int64, data string, state *session.State) *Render {
	switch {
	case data == TokenBackStart:
		// The only transition that clears session state.
		state.Clear()
		r := m.Root()
		r.Edit = true
		return r

	case data == TokenSuggestions:
		state.EnterSuggestMode()
		return &Render{
			Text:    "Напишите ваше предложение по улучшению StructAI:",
			Buttons: backHomeRows(TokenBackStart),
			Edit:    true,
		}

	case data == TokenModeStudy:
		return &Render{
			Text: "Учебный модуль",
			Buttons: append([][]Button{
				row("🧩 Структура Еврокодов", TokenEuStructure),
				row("📚 Выбрать Еврокод", TokenChooseEurocode),
			}, backHomeRows("user_student")...),
			Edit: true,
		}

	case data == TokenModeQuestion:
		state.EnterAiMode()
		return &Render{
			Text:    "Задайте ваш вопрос по Еврокодам одним сообщением:",
			Buttons: backHomeRows("user_student"),
			Edit:    true,
		}

	case data == TokenEuStructure:
		return m.renderContent(ctx, "EU_STRUCTURE", TokenModeStudy)

	case data == TokenChooseEurocode:
		return &Render{
			Text: "Выбери Еврокод",
			Buttons: append([][]Button{
				row("EN 1990 — Основы проектирования", TokenEN1990Main),
			}, backHomeRows(TokenModeStudy)...),
			Edit: true,
		}

	case data == TokenEN1990Main:
		return &Render{
			Text: "EN 1990 — Основы проектирования",
			Buttons: append([][]Button{
				row("❓ Что такое EN 1990", ContentTokenFor("EN1990_about", TokenEN1990Main)),
				row("🎯 Зачем он нужен", ContentTokenFor("EN1990_purpose", TokenEN1990Main)),
				row("📑 Структура EN 1990", ContentTokenFor("EN1990_structure", TokenEN1990Main)),
				row("▶ Начать изучение", TokenEN1990Sections),
			}, backHomeRows(TokenChooseEurocode)...),
			Edit: true,
		}

	case data == TokenEN1990Sections:
		buttons := make([][]Button, 0, len(en1990Sections)+2)
		for _, sec := range en1990Sections {
			buttons = append(buttons, row(sec.Title, sectionPrefix+sec.Id))
		}
		buttons = append(buttons, backHomeRows(TokenEN1990Main)...)
		return &Render{
			Text:    "Разделы EN 1990",
			Buttons: buttons,
			Edit:    true,
		}

	default:
		return m.handlePrefixed(ctx, userId, data, state)
	}
}

func (m *Machine) handlePrefixed(ctx context.Context, userId int64, data string, state *session.State) *Render {
	if role, ok := RoleFromToken(data); ok {
		return m.renderRoleChosen(ctx, userId, role)
	}

	if secId, ok := SectionFromToken(data); ok {
		return m.renderSection(secId)
	}

	if token, ok := ParseContentToken(data); ok {
		return m.renderContent(ctx, token.Key, token.Back)
	}

	// Malformed or unknown token: degrade to a placeholder render.
	m.logger.Warn("navigation", "unknown callback token", map[string]interface{}{"data": data})
	return &Render{
		Text:    constant.MsgUnknownAction,
		Buttons: [][]Button{row("🏠 В главное меню", TokenBackStart)},
		Edit:    true,
	}
}

func (m *Machine) renderRoleChosen(ctx context.Context, userId int64, role string) *Render {
	if constant.ValidRole(role) {
		if err := m.roles.SetRole(ctx, userId, role); err != nil {
			// The menu must still render; the role just stays at its
			// previous value.
			m.logger.Error("navigation", "persist role failed", map[string]interface{}{
				"user_id": userId,
				"role":    role,
				"error":   err.Error(),
			})
		}
	} else {
		m.logger.Warn("navigation", "unknown role token", map[string]interface{}{"role": role})
	}

	return &Render{
		Text: "Что Вы хотите?",
		Buttons: append([][]Button{
			row("📘 Изучать нормы поэтапно", TokenModeStudy),
			row("🤖 Задать вопрос по Еврокодам", TokenModeQuestion),
		}, backHomeRows(TokenBackStart)...),
		Edit: true,
	}
}

func (m *Machine) renderSection(secId string) *Render {
	section := findSection(secId)
	if section == nil {
		return &Render{
			Text:    constant.MsgContentPlaceholder,
			Buttons: backHomeRows(TokenEN1990Sections),
			Edit:    true,
		}
	}

	buttons := make([][]Button, 0, len(section.Subsections)+2)
	for _, sub := range section.Subsections {
		buttons = append(buttons, row(sub.Title, ContentTokenFor(sub.ContentKey, sectionPrefix+section.Id)))
	}
	buttons = append(buttons, backHomeRows(TokenEN1990Sections)...)

	return &Render{
		Text:    section.Title,
		Buttons: buttons,
		Edit:    true,
	}
}

func (m *Machine) renderContent(ctx context.Context, key, backToken string) *Render {
	text, ok := m.content.GetContent(ctx, key)
	if !ok {
		text = constant.MsgContentPlaceholder
	}
	return &Render{
		Text:    text,
		Buttons: backHomeRows(backToken),
		Edit:    true,
	}
}
