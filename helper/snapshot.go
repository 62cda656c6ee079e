package helper

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"pizza_manager/client"
	"pizza_manager/model"
)

// Snapshot là bản chụp read-mostly của backend mà mọi màn hình đọc
// chung. Mutation không bao giờ sửa trực tiếp vào đây — nguồn sự thật
// duy nhất là lần refetch toàn bộ sau mỗi thao tác ghi thành công.
type Snapshot struct {
	mu           sync.RWMutex
	tables       []model.Table
	zones        []model.Zone
	reservations []model.Reservation

	tableSvc       *client.TableService
	zoneSvc        *client.ZoneService
	reservationSvc *client.ReservationService

	scheduler gocron.Scheduler
	onRefresh func(tables []model.Table)
}

func NewSnapshot(tableSvc *client.TableService, zoneSvc *client.ZoneService, reservationSvc *client.ReservationService) *Snapshot {
	return &Snapshot{
		tableSvc:       tableSvc,
		zoneSvc:        zoneSvc,
		reservationSvc: reservationSvc,
	}
}

// OnRefresh đăng ký hook chạy sau mỗi lần refresh thành công
// (đồng bộ lại các bộ đếm ngược)
func (s *Snapshot) OnRefresh(fn func(tables []model.Table)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

// Refresh kéo lại toàn bộ bàn, khu vực, đặt bàn và thay nguyên khối.
// Lỗi giữa chừng thì giữ nguyên bản chụp cũ.
func (s *Snapshot) Refresh(ctx context.Context) error {
	tables, err := s.tableSvc.GetAll(ctx)
	if err != nil {
		return err
	}
	zones, err := s.zoneSvc.GetAll(ctx)
	if err != nil {
		return err
	}
	reservations, err := s.reservationSvc.GetAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tables = tables
	s.zones = zones
	s.reservations = reservations
	onRefresh := s.onRefresh
	s.mu.Unlock()

	if onRefresh != nil {
		onRefresh(tables)
	}
	return nil
}

func (s *Snapshot) Tables() []model.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

func (s *Snapshot) Zones() []model.Zone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Zone, len(s.zones))
	copy(out, s.zones)
	return out
}

func (s *Snapshot) Reservations() []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

func (s *Snapshot) TableById(tableId string) (model.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tables {
		if t.ID == tableId {
			return t, true
		}
	}
	return model.Table{}, false
}

func (s *Snapshot) ReservationById(reservationId string) (model.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reservations {
		if r.ID == reservationId {
			return r, true
		}
	}
	return model.Reservation{}, false
}

// StartScheduler chạy refresh định kỳ — nhịp kéo dữ liệu cố định của
// console, độc lập với refetch sau mutation
func (s *Snapshot) StartScheduler(intervalSeconds int) error {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Duration(intervalSeconds)*time.Second),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.Refresh(ctx); err != nil {
				log.Printf("Lỗi refresh định kỳ: %v", err)
			}
		}),
	)
	if err != nil {
		return err
	}

	s.scheduler = scheduler
	scheduler.Start()
	log.Printf("Scheduler refresh snapshot đã khởi động (mỗi %d giây)", intervalSeconds)
	return nil
}

func (s *Snapshot) StopScheduler() {
	if s.scheduler != nil {
		if err := s.scheduler.Shutdown(); err != nil {
			log.Printf("Lỗi dừng scheduler: %v", err)
		}
	}
}
