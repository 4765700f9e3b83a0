package mailer

import "errors"

var (
	// ErrInvalidMessage возвращается, когда у письма нет получателя или тела
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrRender возвращается при ошибке рендеринга шаблона письма
	ErrRender = errors.New("mailer: render failed")
)
