package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors        int
	AuthFailures       int
	PaymentsCreated    int
	PaymentsSucceeded  int
	PaymentsDeclined   int
	RateLimitHits      int
	IDCollisions       int
	OrderActivity      map[string]int
	ErrorPatterns      map[string]int
}

func main() {
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	stats := &LogStats{
		OrderActivity: make(map[string]int),
		ErrorPatterns: make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		if strings.Contains(line, "API secret mismatch") || strings.Contains(line, "Merchant not found for API key") {
			stats.AuthFailures++
		}
		if strings.Contains(line, "ID collision") {
			stats.IDCollisions++
		}

		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "created in processing for order") {
			stats.PaymentsCreated++
			extractOrderActivity(line, stats)
		}
		if strings.Contains(line, "settled with status success") {
			stats.PaymentsSucceeded++
		}
		if strings.Contains(line, "settled with status failed") {
			stats.PaymentsDeclined++
		}
		if strings.Contains(line, "Rate limit exceeded") {
			stats.RateLimitHits++
		}
	}
}

func extractOrderActivity(line string, stats *LogStats) {
	orderRegex := regexp.MustCompile(`order_[A-Za-z0-9]{16}`)
	if orderID := orderRegex.FindString(line); orderID != "" {
		stats.OrderActivity[orderID]++
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Gateway Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Payment Statistics:")
	fmt.Printf("   Payments Created: %d\n", stats.PaymentsCreated)
	fmt.Printf("   Settled Successfully: %d\n", stats.PaymentsSucceeded)
	fmt.Printf("   Declined: %d\n", stats.PaymentsDeclined)

	fmt.Println("\n2. Security:")
	fmt.Printf("   Authentication Failures: %d\n", stats.AuthFailures)
	fmt.Printf("   Rate Limit Hits: %d\n", stats.RateLimitHits)

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)
	fmt.Printf("   Payment ID Collisions: %d\n", stats.IDCollisions)

	fmt.Println("\n4. Most Paid-Against Orders:")
	printTopOrders(stats.OrderActivity, 5)

	fmt.Println("\n5. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopOrders(orders map[string]int, limit int) {
	type orderActivity struct {
		orderID string
		count   int
	}

	var activities []orderActivity
	for orderID, count := range orders {
		activities = append(activities, orderActivity{orderID, count})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].count > activities[j].count
	})

	for i, activity := range activities {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d payment attempts\n", activity.orderID, activity.count)
	}
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		error string
		count int
	}

	var errorList []errorCount
	for err, count := range errors {
		errorList = append(errorList, errorCount{err, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, err := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", err.error, err.count)
	}
}
