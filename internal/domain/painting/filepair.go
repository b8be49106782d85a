package painting

import (
	"path/filepath"
	"strings"
)

// File - выбранный пользователем файл
type File struct {
	Name string
	Path string
}

// NewFile создает ссылку на файл по пути
func NewFile(path string) *File {
	return &File{
		Name: filepath.Base(path),
		Path: path,
	}
}

// BaseName возвращает имя файла без каталога и без последнего расширения
func BaseName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return name[:i]
	}
	return name
}

// FilePair - пара файлов (изображение и JSON) для загрузки
type FilePair struct {
	Image *File
	JSON  *File
}

// Clear сбрасывает оба выбора
func (fp *FilePair) Clear() {
	fp.Image = nil
	fp.JSON = nil
}

// Validate проверяет пару перед отправкой
func (fp FilePair) Validate() error {
	switch {
	case fp.Image == nil && fp.JSON == nil:
		return ErrFilesNotSelected
	case fp.Image == nil:
		return ErrImageNotSelected
	case fp.JSON == nil:
		return ErrJSONNotSelected
	}

	if BaseName(fp.Image.Name) != BaseName(fp.JSON.Name) {
		return ErrFileNameMismatch
	}

	return nil
}
