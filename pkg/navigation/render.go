package navigation

// Button is one selectable option. CallbackData is the opaque token the
// transport sends back when the button is pressed.
type Button struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

// Render is a menu rendering instruction: message text plus button rows.
type Render struct {
	Text    string     `json:"text"`
	Buttons [][]Button `json:"buttons"`
	// Edit asks the transport to edit the current message instead of
	// sending a new one.
	Edit bool `json:"edit"`
}

func row(text, token string) []Button {
	return []Button{{Text: text, CallbackData: token}}
}

func backHomeRows(backToken string) [][]Button {
	return [][]Button{
		row("⬅ Назад", backToken),
		row("🏠 В главное меню", TokenBackStart),
	}
}
