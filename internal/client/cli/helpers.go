package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/assembleally/client/internal/client/api"
	"github.com/assembleally/client/internal/models"
)

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Переход на новую строку после ввода пароля
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}

// readYesNo читает ответ да/нет
func readYesNo(prompt string) (bool, error) {
	answer, err := readInput(prompt + " (y/N): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// parseID разбирает числовой ID из аргумента команды
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", arg)
	}
	return id, nil
}

// renderError приводит ошибку к сообщению для пользователя.
// Ошибки валидации раскладываются по полям, остальные категории
// получают понятный однострочный текст.
func renderError(err error) string {
	// Локальная валидация до отправки запроса
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		lines := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			lines = append(lines, fmt.Sprintf("  %s: failed %q check", fe.Field(), fe.Tag()))
		}
		return "Invalid input:\n" + strings.Join(lines, "\n")
	}

	// Ошибки валидации от сервера, по полям
	var validationErr *api.ValidationError
	if errors.As(err, &validationErr) {
		names := make([]string, 0, len(validationErr.Fields))
		for name := range validationErr.Fields {
			names = append(names, name)
		}
		sort.Strings(names)

		lines := make([]string, 0, len(names))
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("  %s: %s", name, strings.Join(validationErr.Fields[name], "; ")))
		}
		return "The server rejected the input:\n" + strings.Join(lines, "\n")
	}

	if errors.Is(err, api.ErrSessionExpired) {
		return "Session expired. Please run 'assembleally login' to sign in again."
	}
	if errors.Is(err, api.ErrNotFound) {
		return "Not found. Check the id and try again."
	}
	if errors.Is(err, api.ErrForbidden) {
		return "You are not allowed to do that: " + detailOf(err)
	}

	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return "Network error: the server did not respond. Check your connection and retry."
	}

	return err.Error()
}

// detailOf достает текст detail из ошибки сервера, если он есть
func detailOf(err error) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.Detail != "" {
		return statusErr.Detail
	}
	return err.Error()
}

// formatRating форматирует среднюю оценку с учетом того,
// что ноль означает отсутствие отзывов
func formatRating(rating float64) string {
	if rating <= 0 {
		return "no rating yet"
	}
	return fmt.Sprintf("%.1f/5", rating)
}

// printService печатает одно объявление услуг
func printService(index int, service *models.Service) {
	availability := "available"
	if !service.IsAvailable {
		availability = "not taking orders"
	}
	fmt.Printf("%d. %s\n", index, service.Title)
	fmt.Printf("   ID:       %d\n", service.ID)
	fmt.Printf("   Provider: %s (%s)\n", service.ProviderName, formatRating(service.ProviderRating))
	fmt.Printf("   Rate:     %s/hour, %d year(s) of experience, %s\n",
		service.HourlyRate, service.ExperienceYears, availability)
	fmt.Println()
}

// printProject печатает один проект
func printProject(index int, project *models.Project) {
	fmt.Printf("%d. %s [%s]\n", index, project.Title, project.Status)
	fmt.Printf("   ID:        %d\n", project.ID)
	fmt.Printf("   Creator:   %s\n", project.CreatorName)
	fmt.Printf("   Furniture: %s\n", project.FurnitureType)
	fmt.Printf("   Location:  %s\n", project.Location)
	fmt.Printf("   Budget:    %s\n", project.Budget)
	if project.AssignedToID != nil {
		fmt.Printf("   Assembler: %s\n", project.AssignedToName)
	}
	fmt.Println()
}
