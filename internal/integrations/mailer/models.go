package mailer

// ServiceName имя внешнего сервиса в ExternalServiceError
const ServiceName = "smtp"

// Message письмо с HTML и текстовой версией
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Confirmation данные письма-подтверждения бронирования
type Confirmation struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Service      string
	Date         string
	Time         string
	CompanyName  string
	CompanyEmail string
	CompanyPhone string
}
