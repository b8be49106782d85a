package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Func - мидлварь huma
type Func = func(ctx huma.Context, next func(huma.Context))

// Container собирает цепочки мидлварей: общие для всех обработчиков
// плюс добавленные для очередного обработчика
type Container struct {
	base    huma.Middlewares
	pending huma.Middlewares
}

func NewContainer(base ...Func) *Container {
	return &Container{base: append(huma.Middlewares{}, base...)}
}

// Add добавляет мидлварь только для следующего обработчика
func (mc *Container) Add(middleware Func) {
	mc.pending = append(mc.pending, middleware)
}

// Build отдает общие мидлвари и накопленные через Add, затем забывает накопленные
func (mc *Container) Build() huma.Middlewares {
	result := make(huma.Middlewares, 0, len(mc.base)+len(mc.pending))
	result = append(result, mc.base...)
	result = append(result, mc.pending...)
	mc.pending = nil
	return result
}
