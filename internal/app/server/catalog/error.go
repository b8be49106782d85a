package catalog

import "errors"

var (
	ErrInvalidInput     = errors.New("некорректные данные")
	ErrUnsupportedImage = errors.New("изображение должно быть в формате jpg, jpeg, png или gif")
	ErrNotJSONFile      = errors.New("необходимо загрузить JSON-файл")
	ErrNameMismatch     = errors.New("имена изображения и JSON-файла должны совпадать (без учета расширения)")
	ErrInvalidJSON      = errors.New("некорректный формат JSON")
)
