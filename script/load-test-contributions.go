package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// Contribution is the request payload for the contributions endpoint
type Contribution struct {
	FirstName    string  `json:"firstName"`
	Amount       float64 `json:"amount"`
	Channel      string  `json:"channel"`
	ShareConsent string  `json:"shareConsent,omitempty"`
}

// OverviewTotals is the slice of the overview response the verifier reads
type OverviewTotals struct {
	SupporterCount int   `json:"supporterCount"`
	TotalAmount    int64 `json:"totalAmount"`
	TotalDonations int64 `json:"totalDonations"`
}

// RequestResult contains metrics for a single request
type RequestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
	Amount       int64
}

// RunStats contains aggregated test statistics
type RunStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	SubmittedAmount    int64
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	DonorStats         map[string]int
	Lock               sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	donorsStr := flag.String("donors", "Amina,Brian,Chebet,Daniel,Esther", "Comma-separated donor first names to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var donors []string
	for _, name := range strings.Split(*donorsStr, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			donors = append(donors, trimmed)
		}
	}
	if len(donors) == 0 {
		donors = []string{"Amina"}
	}

	amounts := []float64{50, 100, 250, 500, 1000, 2500}
	channels := []string{"M-Pesa", "PayPal", "Cash/Other"}

	fmt.Printf("Load testing contributions across %d donors: %v\n", len(donors), donors)
	fmt.Printf("Concurrency: %d goroutines, total requests: %d, delay: %d ms\n",
		*concurrency, *totalRequests, *delayMs)

	// Reusing the same first names on purpose: every repeat must land on the
	// same ledger row, which is exactly the upsert contention being tested.
	stats := &RunStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		DonorStats:      make(map[string]int),
	}

	results := make(chan RequestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, donors, amounts, channels, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	var collectWg sync.WaitGroup
	collectWg.Add(1)
	go func() {
		defer collectWg.Done()
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
				stats.SubmittedAmount += result.Amount
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	collectWg.Wait()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	verifyLedger(*baseURL, stats, len(donors))
}

func worker(baseURL string, delayMs int, donors []string, amounts []float64,
	channels []string, jobs <-chan int, results chan<- RequestResult, stats *RunStats) {

	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		donor := donors[rand.Intn(len(donors))]
		amount := amounts[rand.Intn(len(amounts))]
		channel := channels[rand.Intn(len(channels))]

		stats.Lock.Lock()
		stats.DonorStats[donor]++
		stats.Lock.Unlock()

		payload, err := json.Marshal(Contribution{
			FirstName: donor,
			Amount:    amount,
			Channel:   channel,
		})
		if err != nil {
			results <- RequestResult{Success: false, Error: err}
			continue
		}

		req, err := http.NewRequest("POST", baseURL+"/api/supporters/contributions", bytes.NewBuffer(payload))
		if err != nil {
			results <- RequestResult{Success: false, Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		start := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(start)

		result := RequestResult{ResponseTime: responseTime, Amount: int64(amount)}
		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *RunStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sorted := make([]time.Duration, len(stats.ResponseTimes))
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p50 = sorted[len(sorted)*50/100]
		p95 = sorted[len(sorted)*95/100]
		p99 = sorted[len(sorted)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", rawTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- DONOR DISTRIBUTION -----------------")
	for donor, count := range stats.DonorStats {
		fmt.Printf("%-12s: %d requests (%.1f%%)\n", donor, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}

// verifyLedger cross-checks the overview totals against what the test
// submitted. With the dedup key in play the supporter count must not exceed
// the donor pool, no matter how many requests landed.
func verifyLedger(baseURL string, stats *RunStats, donorCount int) {
	resp, err := http.Get(baseURL + "/api/supporters/overview")
	if err != nil {
		fmt.Printf("\nCould not fetch overview for verification: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var totals OverviewTotals
	if err := json.NewDecoder(resp.Body).Decode(&totals); err != nil {
		fmt.Printf("\nCould not decode overview response: %v\n", err)
		return
	}

	fmt.Println("\n================= LEDGER VERIFICATION =================")
	fmt.Printf("Submitted this run:  %d successful contributions, %d total\n",
		stats.SuccessfulRequests, stats.SubmittedAmount)
	fmt.Printf("Ledger now holds:    %d supporters, %d donations, %d total\n",
		totals.SupporterCount, totals.TotalDonations, totals.TotalAmount)

	if totals.SupporterCount <= donorCount {
		fmt.Printf("✅ Supporter count (%d) is within the donor pool (%d): dedup held under load\n",
			totals.SupporterCount, donorCount)
	} else {
		fmt.Printf("❌ Supporter count (%d) exceeds the donor pool (%d): duplicate rows were created\n",
			totals.SupporterCount, donorCount)
	}
	fmt.Println("=======================================================")
}
