package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// ReservationNoticeData dữ liệu cho template email báo ca đặt bàn
type ReservationNoticeData struct {
	CustomerName   string
	PhoneNumber    string
	NumberOfPeople int
	BookingTime    string
	TableCodes     string
}

// SendReservationNoticeEmail gửi email báo quản lý khi một đặt bàn
// được xác nhận (async để không delay response)
func SendReservationNoticeEmail(data ReservationNoticeData) {
	go func() {
		tmplPath := "templates/reservation_notice.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")
		to := os.Getenv("OPS_NOTIFY_EMAIL")
		if to == "" {
			return
		}

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Xác nhận đặt bàn - "+data.CustomerName)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email: %v", err)
		}
	}()
}
