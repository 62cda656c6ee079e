package helper

import (
	"fmt"
	"sync"
	"time"

	"pizza_manager/constants"
)

type CountdownPhase string

const (
	CountdownWaiting CountdownPhase = "Waiting" // chưa đến giờ đặt
	CountdownGrace   CountdownPhase = "Grace"   // quá giờ đặt, đang đếm ngược thời gian chờ
	CountdownExpired CountdownPhase = "Expired" // hết thời gian chờ
	CountdownInvalid CountdownPhase = "Invalid" // bookingTime không parse được
)

type CountdownView struct {
	Phase        CountdownPhase `json:"phase"`
	Display      string         `json:"display"`
	TimerStarted bool           `json:"timerStarted"`
	Expired      bool           `json:"expired"`
}

// Countdown đếm ngược cho một cặp bàn/đặt bàn. Target là bookingTime nếu có,
// không có thì lấy now + duration. Quá target thì đếm ngược tiếp đúng một
// khoảng chờ (duration) rồi mới hết hạn. Callback hết hạn bắn đúng một lần
// cho mỗi vòng đời, và chỉ khi isRunning.
type Countdown struct {
	mu           sync.Mutex
	target       time.Time
	valid        bool
	duration     time.Duration
	isRunning    bool
	timerStarted bool
	expired      bool
	onExpire     func()
	onDisplay    func(CountdownView)
	now          func() time.Time
	stopCh       chan struct{}
	running      bool
}

func NewCountdown(bookingTime string, durationMinutes int, isRunning bool, onExpire func()) *Countdown {
	if durationMinutes <= 0 {
		durationMinutes = constants.DEFAULT_COUNTDOWN_MINUTES
	}
	c := &Countdown{
		duration:  time.Duration(durationMinutes) * time.Minute,
		isRunning: isRunning,
		onExpire:  onExpire,
		now:       time.Now,
	}
	c.retarget(bookingTime)
	return c
}

func (c *Countdown) retarget(bookingTime string) {
	if bookingTime == "" {
		c.target = c.now().Add(c.duration)
		c.valid = true
		return
	}
	t, ok := ParseBookingTime(bookingTime)
	if !ok {
		c.valid = false
		return
	}
	c.target = t
	c.valid = true
}

// Subscribe đăng ký callback nhận chuỗi hiển thị mỗi tick
func (c *Countdown) Subscribe(fn func(CountdownView)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDisplay = fn
}

// SetClock thay đồng hồ, phục vụ test
func (c *Countdown) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Start chạy vòng tick 1 giây. Gọi lại khi đang chạy là no-op.
func (c *Countdown) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.stopCh = make(chan struct{})
	stopCh := c.stopCh
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Tick()
			case <-stopCh:
				return
			}
		}
	}()
}

// Stop dừng vòng tick và giải phóng ticker. Idempotent.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	close(c.stopCh)
}

// Reset trỏ sang bookingTime mới và xóa trạng thái hết hạn,
// tương đương hủy instance cũ tạo instance mới
func (c *Countdown) Reset(bookingTime string, isRunning bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retarget(bookingTime)
	c.isRunning = isRunning
	c.timerStarted = false
	c.expired = false
}

// Tick tính trạng thái tại thời điểm hiện tại. Trả về view để
// handler dùng trực tiếp, đồng thời đẩy qua callback hiển thị.
func (c *Countdown) Tick() CountdownView {
	c.mu.Lock()

	var view CountdownView
	var fireExpire bool

	switch {
	case !c.valid:
		view = CountdownView{Phase: CountdownInvalid, Display: constants.DISPLAY_NA}
	default:
		delta := c.target.Sub(c.now())
		if delta > 0 {
			view = CountdownView{
				Phase:   CountdownWaiting,
				Display: "Còn " + humanDuration(delta),
			}
		} else {
			c.timerStarted = true
			overdue := -delta
			if overdue >= c.duration {
				if !c.expired {
					c.expired = true
					fireExpire = c.isRunning
				}
				view = CountdownView{Phase: CountdownExpired, Display: constants.DISPLAY_EXPIRED}
			} else {
				view = CountdownView{
					Phase:   CountdownGrace,
					Display: clockDuration(c.duration - overdue),
				}
			}
		}
	}

	view.TimerStarted = c.timerStarted
	view.Expired = c.expired
	onDisplay := c.onDisplay
	onExpire := c.onExpire
	c.mu.Unlock()

	if onDisplay != nil {
		onDisplay(view)
	}
	if fireExpire && onExpire != nil {
		onExpire()
	}
	return view
}

// humanDuration: "2 giờ 5 phút", "12 phút", "40 giây"
func humanDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%d giờ %d phút", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%d giờ", hours)
	case minutes > 0:
		return fmt.Sprintf("%d phút", minutes)
	default:
		return fmt.Sprintf("%d giây", totalSeconds)
	}
}

// clockDuration: "MM:SS", quá một giờ thì "HH:MM:SS"
func clockDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
