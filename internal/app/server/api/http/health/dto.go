package health

// Input - вход проверки здоровья
type Input struct{}

// Output - ответ проверки здоровья
type Output struct {
	Body Response
}

type Response struct {
	Status string `json:"status" example:"OK" doc:"Состояние сервиса"`
}
