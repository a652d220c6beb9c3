package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// handleLoadTest shells out to locust, the pre-built load generator the
// service has always been tested with.
func handleLoadTest(reader *bufio.Reader) {
	fmt.Println()
	fmt.Println(titleStyle.Render("LOAD TEST WITH LOCUST"))
	fmt.Println("  1. Light test (50 users, 5 minutes)")
	fmt.Println("  2. Medium test (100 users, 10 minutes)")
	fmt.Println("  3. Heavy test (200 users, 15 minutes)")
	fmt.Println("  4. Custom configuration")
	fmt.Println("  5. Web UI mode")

	choice := promptDefault(reader, "Select configuration", "1")
	host := "--host=" + baseURL

	var args []string
	switch choice {
	case "1":
		args = []string{host, "--users=50", "--spawn-rate=5", "--run-time=300s", "--headless"}
	case "2":
		args = []string{host, "--users=100", "--spawn-rate=10", "--run-time=600s", "--headless"}
	case "3":
		args = []string{host, "--users=200", "--spawn-rate=20", "--run-time=900s", "--headless"}
	case "4":
		users, err := promptInt(reader, "Number of users", 50)
		if err != nil {
			fmt.Println(badStyle.Render("Invalid input. Please enter valid numbers."))
			return
		}
		spawnRate, err := promptInt(reader, "Spawn rate", 5)
		if err != nil {
			fmt.Println(badStyle.Render("Invalid input. Please enter valid numbers."))
			return
		}
		duration := promptDefault(reader, "Duration (e.g. 300s)", "300s")
		args = []string{host,
			fmt.Sprintf("--users=%d", users),
			fmt.Sprintf("--spawn-rate=%d", spawnRate),
			"--run-time=" + duration,
			"--headless"}
	case "5":
		fmt.Println("Starting Locust Web UI on http://localhost:8089")
		args = []string{host}
	default:
		fmt.Println(badStyle.Render("Invalid choice"))
		return
	}

	fmt.Printf("\nRunning: locust %s\n", strings.Join(args, " "))
	fmt.Println("Press Ctrl+C to stop the test")

	cmd := exec.Command("locust", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			fmt.Println(badStyle.Render("locust not found. Install it with: pip install locust"))
		} else {
			fmt.Println(badStyle.Render("Load test ended: " + err.Error()))
		}
	}

	pause(reader)
}
