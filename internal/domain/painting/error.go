package painting

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("картина не найдена")
	ErrInvalidMetadata  = errors.New("метаданные не являются корректным JSON")
	ErrFilesNotSelected = errors.New("выберите одновременно файл изображения и соответствующий JSON-файл")
	ErrImageNotSelected = errors.New("не выбран файл изображения")
	ErrJSONNotSelected  = errors.New("не выбран JSON-файл")
	ErrFileNameMismatch = errors.New("имена файла изображения и JSON-файла должны совпадать (без учета расширения)")
)
