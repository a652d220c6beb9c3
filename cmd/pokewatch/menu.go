package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauricio-alvarez/pokeserve/internal/monitor"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A")).
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9e9e9e"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
)

func runMenu(m *monitor.Monitor) error {
	reader := bufio.NewReader(os.Stdin)

	for {
		printHeader(m)
		printMenu()

		choice, err := prompt(reader, "Enter your choice")
		if err != nil {
			return nil // stdin closed
		}

		switch strings.TrimSpace(choice) {
		case "1":
			handleLatency(reader, m)
		case "2":
			handleAvailability(reader, m)
		case "3":
			handleGraph(reader, m, "latency")
		case "4":
			handleGraph(reader, m, "availability")
		case "5":
			handleLoadTest(reader)
		case "6":
			handleSettings(reader, m)
		case "0":
			fmt.Println("\nGoodbye!")
			return nil
		default:
			fmt.Println(badStyle.Render("Invalid choice. Please select a valid option."))
			time.Sleep(2 * time.Second)
		}
	}
}

func printHeader(m *monitor.Monitor) {
	fmt.Println()
	fmt.Println(headerStyle.Render("POKEMON API MONITORING BOT"))
	fmt.Printf("%s %s\n", labelStyle.Render("Base URL:"), m.BaseURL)
	fmt.Printf("%s %s\n", labelStyle.Render("Time:    "), time.Now().Format("2006-01-02 15:04:05"))
}

func printMenu() {
	fmt.Println()
	fmt.Println(titleStyle.Render("MAIN MENU"))
	fmt.Println("  1. Check Latency")
	fmt.Println("  2. Check Availability")
	fmt.Println("  3. Render Latency Graph")
	fmt.Println("  4. Render Availability Graph")
	fmt.Println("  5. Run Load Test (Locust)")
	fmt.Println("  6. Settings")
	fmt.Println("  0. Exit")
}

func handleLatency(reader *bufio.Reader, m *monitor.Monitor) {
	ep := promptDefault(reader, "Enter endpoint", "/poke/search")
	minutes, err := promptInt(reader, "Enter duration in minutes", 5)
	if err != nil {
		fmt.Println(badStyle.Render("Invalid input. Please enter valid numbers."))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	report := m.CheckLatency(ctx, ep, time.Duration(minutes)*time.Minute)
	stop()

	printLatencyReport(report)
	pause(reader)
}

func handleAvailability(reader *bufio.Reader, m *monitor.Monitor) {
	ep := promptDefault(reader, "Enter endpoint", "/poke/search")
	days, err := promptInt(reader, "Enter number of days", 1)
	if err != nil {
		fmt.Println(badStyle.Render("Invalid input. Please enter valid numbers."))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	report := m.CheckAvailability(ctx, ep, days)
	stop()

	printAvailabilityReport(report)
	pause(reader)
}

func handleGraph(reader *bufio.Reader, m *monitor.Monitor, metric string) {
	ep := promptDefault(reader, "Enter endpoint", "/poke/search")
	days, err := promptInt(reader, "Enter number of days", 7)
	if err != nil {
		fmt.Println(badStyle.Render("Invalid input. Please enter valid numbers."))
		return
	}

	m.RenderGraph(metric, ep, days)
	pause(reader)
}

func handleSettings(reader *bufio.Reader, m *monitor.Monitor) {
	fmt.Printf("\nCurrent base URL: %s\n", m.BaseURL)
	if url := promptDefault(reader, "Enter new base URL (blank to keep)", ""); url != "" {
		m.BaseURL = strings.TrimRight(url, "/")
		fmt.Println(goodStyle.Render("Base URL updated to: " + m.BaseURL))
	}
	pause(reader)
}

func printLatencyReport(r monitor.LatencyReport) {
	if r.TotalRequests == 0 {
		fmt.Println(warnStyle.Render("\nNo samples collected."))
		return
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("LATENCY REPORT"))
	fmt.Printf("  Endpoint:        %s\n", r.Endpoint)
	fmt.Printf("  Duration:        %s\n", r.Duration)
	fmt.Printf("  Total Requests:  %d\n", r.TotalRequests)
	fmt.Printf("  Average Latency: %.2fms\n", r.AvgLatency)
	fmt.Printf("  Min Latency:     %.2fms\n", r.MinLatency)
	fmt.Printf("  Max Latency:     %.2fms\n", r.MaxLatency)
	fmt.Printf("  Median Latency:  %.2fms\n", r.MedianLatency)
	fmt.Printf("  Success Rate:    %.1f%%\n", r.SuccessRate)
}

func printAvailabilityReport(r monitor.AvailabilityReport) {
	fmt.Println()
	fmt.Println(titleStyle.Render("AVAILABILITY REPORT"))
	fmt.Printf("  Endpoint:            %s\n", r.Endpoint)
	fmt.Printf("  Period:              %d day(s)\n", r.Days)
	fmt.Printf("  Total Requests:      %d\n", r.TotalRequests)
	fmt.Printf("  Successful Requests: %d\n", r.SuccessCount)
	fmt.Printf("  Error Requests (5xx): %d\n", r.ErrorCount)
	fmt.Printf("  Availability:        %.2f%%\n", r.Availability)
	fmt.Printf("  Success Rate:        %.1f%%\n", r.SuccessRate)

	status := r.Status()
	switch status {
	case "EXCELLENT":
		fmt.Println("  Status: " + goodStyle.Render(status))
	case "GOOD":
		fmt.Println("  Status: " + warnStyle.Render(status))
	default:
		fmt.Println("  Status: " + badStyle.Render(status))
	}
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Printf("\n%s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptDefault(reader *bufio.Reader, label, def string) string {
	display := label
	if def != "" {
		display = fmt.Sprintf("%s [%s]", label, def)
	}
	v, err := prompt(reader, display)
	if err != nil || v == "" {
		return def
	}
	return v
}

func promptInt(reader *bufio.Reader, label string, def int) (int, error) {
	v := promptDefault(reader, label, strconv.Itoa(def))
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func pause(reader *bufio.Reader) {
	fmt.Print("\nPress Enter to continue...")
	reader.ReadString('\n')
}
