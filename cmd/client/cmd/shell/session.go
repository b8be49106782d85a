package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gallery/cmd/client/cmd/cmdutil"
	"gallery/internal/app/client"
	"gallery/internal/app/client/render"
	"gallery/internal/app/client/ui"
	"gallery/internal/domain/painting"
)

const (
	prompt     = "gallery> "
	metaPrompt = "... "
	metaEnd    = "."
)

var errQuit = errors.New("quit")

const helpText = `Команды:
  list                   список картин
  show <id>              картина из списка
  stats                  статистика по династиям и категориям
  refresh                перечитать список и статистику
  set <поле> <значение>  изменить поле формы (title, artist, dynasty, category, description)
  meta                   ввести метаданные JSON (несколько строк, завершить строкой ".")
  meta clear             очистить метаданные
  draft                  показать форму
  edit <id>              загрузить картину в форму для редактирования
  save                   сохранить форму (создание или обновление)
  delete <id>            удалить картину
  image <путь>           выбрать изображение
  json <путь>            выбрать JSON-файл
  upload                 загрузить выбранную пару файлов
  reset                  очистить форму и выбранные файлы
  help                   эта справка
  quit                   выход`

// Session - интерактивный сеанс поверх одного состояния клиента
type Session struct {
	app     *client.App
	console *ui.Console
	in      *bufio.Reader
	out     io.Writer
	format  string
}

// NewSession создает сеанс. Ввод берется из консоли, чтобы подтверждения
// удаления читали тот же поток.
func NewSession(app *client.App, console *ui.Console, format string) *Session {
	return &Session{
		app:     app,
		console: console,
		in:      console.Reader(),
		out:     console.Out(),
		format:  format,
	}
}

// Run загружает данные и обрабатывает команды до quit или конца ввода
func (s *Session) Run(ctx context.Context) error {
	// ошибки загрузки уже показаны пользователю
	_ = s.app.Load(ctx)

	fmt.Fprintln(s.out, "Введите help для списка команд")
	if err := render.Paintings(s.out, s.app.Paintings(), s.format); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, prompt)
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("ошибка чтения ввода: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		if execErr := s.Exec(ctx, line); execErr != nil {
			if errors.Is(execErr, errQuit) {
				return nil
			}
			s.console.Alert(execErr.Error())
		}

		if eof {
			fmt.Fprintln(s.out)
			return nil
		}
	}
}

// Exec выполняет одну строку. Возвращает только ошибки, о которых
// пользователь еще не был уведомлен.
func (s *Session) Exec(ctx context.Context, line string) error {
	name, arg := splitCommand(line)

	switch name {
	case "":
		return nil
	case "help", "?":
		fmt.Fprintln(s.out, helpText)
	case "quit", "exit", "q":
		return errQuit
	case "list", "ls":
		return render.Paintings(s.out, s.app.Paintings(), s.format)
	case "show":
		return s.show(arg)
	case "stats":
		return render.Stats(s.out, []render.StatGroup{
			{Dimension: painting.DimensionDynasty, Entries: s.app.DynastyStats()},
			{Dimension: painting.DimensionCategory, Entries: s.app.CategoryStats()},
		}, s.format)
	case "refresh":
		_ = s.app.Load(ctx)
	case "set":
		return s.set(arg)
	case "meta":
		return s.meta(arg)
	case "draft":
		return render.Draft(s.out, s.app.Draft(), s.app.EditSession(), s.app.FilePair())
	case "edit":
		id, err := cmdutil.ParseID(arg)
		if err != nil {
			return err
		}
		if err := s.app.EditPaintingByID(ctx, id); err != nil {
			return fmt.Errorf("не удалось загрузить картину %d: %w", id, err)
		}
		return render.Draft(s.out, s.app.Draft(), s.app.EditSession(), s.app.FilePair())
	case "save":
		_ = s.app.SavePainting(ctx)
	case "delete", "rm":
		id, err := cmdutil.ParseID(arg)
		if err != nil {
			return err
		}
		_, _ = s.app.DeletePainting(ctx, id)
	case "image":
		if arg == "" {
			return fmt.Errorf("укажите путь к изображению")
		}
		s.app.SelectImage(arg)
	case "json":
		if arg == "" {
			return fmt.Errorf("укажите путь к JSON-файлу")
		}
		s.app.SelectJSON(arg)
	case "upload":
		_ = s.app.UploadFiles(ctx)
	case "reset", "new":
		s.app.ResetForm()
	default:
		return fmt.Errorf("неизвестная команда: %s (help - список команд)", name)
	}

	return nil
}

func (s *Session) show(arg string) error {
	id, err := cmdutil.ParseID(arg)
	if err != nil {
		return err
	}
	for _, p := range s.app.Paintings() {
		if p.ID == id {
			return render.Painting(s.out, p, s.format)
		}
	}
	return fmt.Errorf("картина %d: %w", id, painting.ErrNotFound)
}

func (s *Session) set(arg string) error {
	fieldName, value := splitCommand(arg)
	if fieldName == "" {
		return fmt.Errorf("использование: set <поле> <значение>")
	}

	field, err := painting.ParseField(fieldName)
	if err != nil {
		return err
	}
	if field == painting.FieldMetadata {
		s.app.SetMetadataText(value)
		return nil
	}
	return s.app.SetField(field, value)
}

// meta читает многострочный JSON до строки "."
func (s *Session) meta(arg string) error {
	if arg == "clear" {
		s.app.SetMetadataText("")
		return nil
	}

	fmt.Fprintf(s.out, "Введите JSON, завершите строкой %q\n", metaEnd)

	var lines []string
	for {
		fmt.Fprint(s.out, metaPrompt)
		line, err := s.in.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == metaEnd {
			break
		}
		if trimmed != "" || err == nil {
			lines = append(lines, trimmed)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("ошибка чтения ввода: %w", err)
		}
	}

	s.app.SetMetadataText(strings.Join(lines, "\n"))
	return nil
}

// splitCommand отделяет первое слово от остатка строки
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	name, rest, _ := strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(rest)
}
