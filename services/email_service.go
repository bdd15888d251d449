package services

import (
	"fmt"
	"time"

	"permit-service-api/config"
	"permit-service-api/models"

	"github.com/google/uuid"
)

func statusLabel(status models.RequestStatus) string {
	if status == models.StatusDitolak {
		return "Ditolak"
	}
	return "Disetujui"
}

func statusColor(status models.RequestStatus) string {
	if status == models.StatusDisetujui {
		return "#10b981"
	}
	return "#ef4444"
}

func decisionMailBody(namaPemohon, jenisPerizinan string, status models.RequestStatus, balasan string) string {
	return fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif; line-height: 1.6;">
			<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
				<div style="background-color: #1e40af; color: white; padding: 20px; text-align: center;">
					<h1>Layanan Perizinan</h1>
				</div>
				<div style="padding: 20px; background-color: #f8fafc;">
					<h2>Yth. %s,</h2>
					<p>Berikut adalah balasan untuk permohonan <strong>%s</strong> Anda:</p>
					<div style="background-color: white; border-left: 4px solid %s; padding: 15px; margin: 20px 0;">
						<p><strong>Status: %s</strong></p>
						<p>%s</p>
					</div>
					<p>Jika ada pertanyaan lebih lanjut, silakan hubungi kami.</p>
					<hr style="margin: 20px 0;">
					<p style="color: #666; font-size: 12px;">
						Email ini dikirim secara otomatis dari sistem layanan perizinan.
					</p>
				</div>
			</div>
		</body>
		</html>
	`, namaPemohon, jenisPerizinan, statusColor(status), statusLabel(status), balasan)
}

// SendDecisionMail mails the approve/reject reply to the applicant and
// records the attempt in email_logs. A delivery failure is logged but never
// rolls back the decision itself.
func SendDecisionMail(requestID uuid.UUID, toEmail, namaPemohon, jenisPerizinan string, status models.RequestStatus, balasan string) error {
	subject := fmt.Sprintf("Balasan Permohonan %s - %s", jenisPerizinan, statusLabel(status))
	body := decisionMailBody(namaPemohon, jenisPerizinan, status, balasan)

	emailLog := &models.EmailLog{
		PermitRequestID: requestID,
		EmailTujuan:     toEmail,
		Subjek:          subject,
		Isi:             balasan,
		Status:          "pending",
	}

	err := config.SendMail([]string{toEmail}, subject, body)
	now := time.Now()
	if err != nil {
		emailLog.Status = "failed"
		emailLog.Error = err.Error()
		config.DB.Create(emailLog)
		return err
	}

	emailLog.Status = "sent"
	emailLog.SentAt = &now
	config.DB.Create(emailLog)
	return nil
}
