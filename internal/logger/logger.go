package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	timeColor    = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	debugColor   = color.New(color.FgCyan)
)

func prefix() string {
	return timeColor.Sprintf("[%s]", time.Now().Format("15:04:05"))
}

// Info log une information générale (bleu)
func Info(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", prefix(), infoColor.Sprintf(message, args...))
}

// Success log un succès (vert)
func Success(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", prefix(), successColor.Sprint("✓ ", fmt.Sprintf(message, args...)))
}

// Warning log un avertissement (jaune)
func Warning(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", prefix(), warningColor.Sprint("⚠ ", fmt.Sprintf(message, args...)))
}

// Error log une erreur (rouge)
func Error(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", prefix(), errorColor.Sprint("✗ ", fmt.Sprintf(message, args...)))
}

// Debug log un message de debug (cyan)
func Debug(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", prefix(), debugColor.Sprintf("DEBUG: "+message, args...))
}

// Request log une requête HTTP avec son status et sa durée
func Request(method, path string, statusCode int, duration time.Duration) {
	var statusColor *color.Color
	switch {
	case statusCode >= 200 && statusCode < 300:
		statusColor = successColor
	case statusCode >= 300 && statusCode < 400:
		statusColor = debugColor
	case statusCode >= 400 && statusCode < 500:
		statusColor = warningColor
	default:
		statusColor = errorColor
	}

	// Formater la durée
	var durationStr string
	switch {
	case duration < time.Millisecond:
		durationStr = fmt.Sprintf("%.0fµs", float64(duration.Microseconds()))
	case duration < time.Second:
		durationStr = fmt.Sprintf("%.0fms", float64(duration.Milliseconds()))
	default:
		durationStr = fmt.Sprintf("%.2fs", duration.Seconds())
	}

	fmt.Printf("%s %-6s %-50s %s %s\n",
		prefix(),
		method,
		path,
		statusColor.Sprintf("[%d]", statusCode),
		timeColor.Sprintf("(%s)", durationStr),
	)
}
