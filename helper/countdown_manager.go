package helper

import (
	"log"
	"sync"

	"pizza_manager/constants"
	"pizza_manager/model"
)

// CountdownManager giữ đúng một Countdown cho mỗi bàn đang gắn đặt bàn.
// Sau mỗi lần refresh snapshot, Sync đối chiếu lại: bàn mới có đặt bàn thì
// tạo và chạy, bàn đổi đặt bàn thì reset, bàn không còn đặt bàn thì dừng
// và bỏ — không để ticker chạy rơi.
type CountdownManager struct {
	mu              sync.Mutex
	countdowns      map[string]*Countdown
	bookingByTable  map[string]string
	durationMinutes int
	onExpire        func(tableId string)
}

func NewCountdownManager(durationMinutes int, onExpire func(tableId string)) *CountdownManager {
	if durationMinutes <= 0 {
		durationMinutes = constants.DEFAULT_COUNTDOWN_MINUTES
	}
	return &CountdownManager{
		countdowns:      make(map[string]*Countdown),
		bookingByTable:  make(map[string]string),
		durationMinutes: durationMinutes,
		onExpire:        onExpire,
	}
}

func (m *CountdownManager) Sync(tables []model.Table) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]bool, len(tables))
	for _, t := range tables {
		if t.Status != model.TableReserved || !t.HasReservation() {
			continue
		}
		seen[t.ID] = true
		booking := t.CurrentReservation.BookingTime

		if existing, ok := m.countdowns[t.ID]; ok {
			if m.bookingByTable[t.ID] != booking {
				existing.Reset(booking, true)
				m.bookingByTable[t.ID] = booking
			}
			continue
		}

		tableId := t.ID
		cd := NewCountdown(booking, m.durationMinutes, true, func() {
			log.Printf("Đặt bàn tại bàn %s đã quá thời gian chờ", tableId)
			if m.onExpire != nil {
				m.onExpire(tableId)
			}
		})
		cd.Start()
		m.countdowns[t.ID] = cd
		m.bookingByTable[t.ID] = booking
	}

	for id, cd := range m.countdowns {
		if !seen[id] {
			cd.Stop()
			delete(m.countdowns, id)
			delete(m.bookingByTable, id)
		}
	}
}

// DurationMinutes trả khoảng chờ đang áp cho mọi bộ đếm, cố định từ
// lúc khởi tạo
func (m *CountdownManager) DurationMinutes() int {
	return m.durationMinutes
}

// View trả trạng thái đếm ngược hiện tại của một bàn, false nếu bàn
// không có đếm ngược nào đang chạy
func (m *CountdownManager) View(tableId string) (CountdownView, bool) {
	m.mu.Lock()
	cd, ok := m.countdowns[tableId]
	m.mu.Unlock()
	if !ok {
		return CountdownView{}, false
	}
	return cd.Tick(), true
}

// StopAll dừng toàn bộ khi tắt server
func (m *CountdownManager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, cd := range m.countdowns {
		cd.Stop()
		delete(m.countdowns, id)
		delete(m.bookingByTable, id)
	}
}
