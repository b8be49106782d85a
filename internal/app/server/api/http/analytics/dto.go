package analytics

type statsInput struct {
	Dimension string `path:"dimension" enum:"dynasty,category,artist,timeline" doc:"Измерение статистики"`
}

// statsOutput - строки вида {"dynasty": "Сун", "count": 3}; для timeline ключ группы "date"
type statsOutput struct {
	Body []map[string]any
}
