// Package ui - консольные реализации уведомлений и подтверждений клиента.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Console выводит сообщения в терминал и читает ответы пользователя
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	assumeYes   bool
}

// NewConsole создает консоль поверх stdin/stdout
func NewConsole(assumeYes bool) *Console {
	return &Console{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		assumeYes:   assumeYes,
	}
}

// NewConsoleWith создает консоль с заданными потоками (скрипты, тесты)
func NewConsoleWith(in io.Reader, out io.Writer, interactive, assumeYes bool) *Console {
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		assumeYes:   assumeYes,
	}
}

// Reader отдает общий буферизованный ввод, чтобы shell и подтверждения
// не теряли строки друг у друга
func (c *Console) Reader() *bufio.Reader {
	return c.in
}

// Out возвращает поток вывода
func (c *Console) Out() io.Writer {
	return c.out
}

// Alert печатает сообщение пользователю. Через него идут и ошибки, и
// сообщения об успехе, поэтому префикс нейтральный.
func (c *Console) Alert(msg string) {
	fmt.Fprintln(c.out, color.New(color.Bold).Sprint("» ")+msg)
}

// Confirm спрашивает да/нет. Без терминала и без --yes ответ отрицательный.
func (c *Console) Confirm(msg string) bool {
	if c.assumeYes {
		return true
	}

	if !c.interactive {
		fmt.Fprintln(c.out, color.YellowString("%s [y/N]: нет терминала, используйте --yes", msg))
		return false
	}

	fmt.Fprint(c.out, color.YellowString("%s [y/N]: ", msg))

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}

// Success печатает сообщение об успехе
func (c *Console) Success(format string, args ...interface{}) {
	fmt.Fprintln(c.out, color.GreenString("✓ ")+fmt.Sprintf(format, args...))
}
