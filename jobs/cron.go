package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Summarizer định nghĩa interface cho báo cáo tổng quan hằng ngày
type Summarizer interface {
	DailySummary(ctx context.Context) error
}

const summaryTimeout = time.Minute

// InitCronJobs khởi tạo các cron jobs, spec theo cú pháp 5 trường của cron
func InitCronJobs(c *cron.Cron, spec string, summarizer Summarizer) error {
	_, err := c.AddFunc(spec, func() {
		runSummary(summarizer)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

func runSummary(summarizer Summarizer) {
	ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
	defer cancel()

	log.Printf("Đang chạy báo cáo tổng quan lúc: %v", time.Now())
	if err := summarizer.DailySummary(ctx); err != nil {
		log.Printf("Lỗi khi chạy báo cáo tổng quan: %v", err)
	}
}
