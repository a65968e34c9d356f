package service

import (
	"fmt"

	"clinic-backend/config"
	domainRepo "clinic-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// MailService renders and delivers the clinic's transactional emails over
// SMTP. SMTP settings stored in the clinic_settings row take precedence over
// the environment configuration, so operators can switch accounts at runtime.
//
// The reminder methods never return an error: transport failures are logged
// and reported as a plain false so the scheduler can retry.
type MailService struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.SMTPConfig
	settingsRepo domainRepo.ClinicSettingsRepository
}

func NewMailService(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.SMTPConfig,
	settingsRepo domainRepo.ClinicSettingsRepository,
) *MailService {
	return &MailService{
		db:           db,
		log:          log,
		cfg:          cfg,
		settingsRepo: settingsRepo,
	}
}

type smtpSettings struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func (s *MailService) resolveSettings() smtpSettings {
	resolved := smtpSettings{
		host:     s.cfg.Host,
		port:     s.cfg.Port,
		username: s.cfg.Username,
		password: s.cfg.Password,
		from:     s.cfg.FromEmail,
	}

	if s.db != nil && s.settingsRepo != nil {
		stored, err := s.settingsRepo.Find(s.db)
		if err != nil {
			s.log.Warnf("Failed to load clinic SMTP settings, using environment config: %+v", err)
		} else if stored != nil {
			if stored.SMTPServer != "" {
				resolved.host = stored.SMTPServer
			}
			if stored.SMTPPort != 0 {
				resolved.port = stored.SMTPPort
			}
			if stored.SMTPUsername != "" {
				resolved.username = stored.SMTPUsername
			}
			if stored.SMTPPassword != "" {
				resolved.password = stored.SMTPPassword
			}
			if stored.SMTPFromEmail != "" {
				resolved.from = stored.SMTPFromEmail
			}
		}
	}

	if resolved.from == "" {
		resolved.from = resolved.username
	}
	return resolved
}

// send delivers one message with plain-text and HTML alternatives. A blocking
// SMTP dial happens here, so callers must not run it on a request path.
func (s *MailService) send(to, subject, plainBody, htmlBody string) error {
	settings := s.resolveSettings()
	if settings.host == "" || settings.username == "" || to == "" {
		return fmt.Errorf("smtp not configured or recipient missing")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", settings.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(settings.host, settings.port, settings.username, settings.password)
	return d.DialAndSend(m)
}

// SendAppointmentReminder notifies a professional about an upcoming session.
// Returns false on any failure; the scheduler treats that as retryable.
func (s *MailService) SendAppointmentReminder(recipientEmail, recipientName, patientName, dateStr, timeStr string) bool {
	subject := fmt.Sprintf("Lembrete de Consulta: %s às %s", patientName, timeStr)
	html := fmt.Sprintf(`
	<html>
		<body>
			<h2>Olá, %s!</h2>
			<p>Este é um lembrete automático de que você possui uma consulta em breve.</p>
			<ul>
				<li><strong>Paciente:</strong> %s</li>
				<li><strong>Data:</strong> %s</li>
				<li><strong>Horário:</strong> %s</li>
			</ul>
			<p>Atenciosamente,<br>Equipe da Clínica</p>
		</body>
	</html>
	`, recipientName, patientName, dateStr, timeStr)

	if err := s.send(recipientEmail, subject, "Lembrete de Consulta", html); err != nil {
		s.log.Warnf("Failed to send reminder email to %s: %+v", recipientEmail, err)
		return false
	}
	s.log.Infof("Reminder email sent to %s for patient %s", recipientEmail, patientName)
	return true
}

// SendPatientMessageNotification tells a professional a patient wrote to them.
func (s *MailService) SendPatientMessageNotification(professionalEmail, professionalName, patientName string) bool {
	subject := fmt.Sprintf("Nova Mensagem de Paciente: %s", patientName)
	html := fmt.Sprintf(`
	<html>
		<body>
			<h2>Olá, %s!</h2>
			<p>Você recebeu uma nova mensagem do paciente <strong>%s</strong>.</p>
			<p>Acesse o painel do sistema para ler o que seu paciente escreveu sobre o dia dele.</p>
			<br>
			<p>Atenciosamente,<br>Equipe da Clínica</p>
		</body>
	</html>
	`, professionalName, patientName)

	if err := s.send(professionalEmail, subject, "Nova Mensagem de Paciente", html); err != nil {
		s.log.Warnf("Failed to send message notification to %s: %+v", professionalEmail, err)
		return false
	}
	s.log.Infof("Message notification sent to %s for patient %s", professionalEmail, patientName)
	return true
}

// SendPatientWelcome delivers the patient's portal credentials.
func (s *MailService) SendPatientWelcome(patientEmail, patientName, patientCPF, password string) bool {
	subject := "Bem-vindo ao Sistema da Clínica"
	html := fmt.Sprintf(`
	<html>
		<body>
			<h2>Olá, %s!</h2>
			<p>Seu cadastro no sistema da clínica foi realizado com sucesso.</p>
			<p>Agora você pode acessar o portal para enviar mensagens sobre o seu dia a dia para o seu psicólogo.</p>
			<br>
			<p><strong>Seus dados de acesso:</strong></p>
			<ul>
				<li><strong>CPF (Login):</strong> %s</li>
				<li><strong>Senha Provisória:</strong> %s</li>
			</ul>
			<p>Recomendamos que guarde esta senha com segurança.</p>
			<br>
			<p>Atenciosamente,<br>Equipe da Clínica</p>
		</body>
	</html>
	`, patientName, patientCPF, password)

	if err := s.send(patientEmail, subject, "Bem-vindo ao Sistema da Clínica", html); err != nil {
		s.log.Warnf("Failed to send welcome email to %s: %+v", patientEmail, err)
		return false
	}
	s.log.Infof("Welcome email sent to %s", patientEmail)
	return true
}

// SendProfessionalWelcome delivers the professional's login credentials.
func (s *MailService) SendProfessionalWelcome(professionalEmail, professionalName, password string) bool {
	subject := "Bem-vindo ao Sistema da Clínica"
	html := fmt.Sprintf(`
	<html>
		<body>
			<h2>Olá, %s!</h2>
			<p>Sua conta de acesso ao sistema da clínica foi criada.</p>
			<p><strong>Seus dados de acesso:</strong></p>
			<ul>
				<li><strong>E-mail (Login):</strong> %s</li>
				<li><strong>Senha:</strong> %s</li>
			</ul>
			<p>Recomendamos alterar a senha no primeiro acesso.</p>
			<br>
			<p>Atenciosamente,<br>Equipe da Clínica</p>
		</body>
	</html>
	`, professionalName, professionalEmail, password)

	if err := s.send(professionalEmail, subject, "Bem-vindo ao Sistema da Clínica", html); err != nil {
		s.log.Warnf("Failed to send welcome email to %s: %+v", professionalEmail, err)
		return false
	}
	s.log.Infof("Welcome email sent to %s", professionalEmail)
	return true
}

// SendTemporaryPassword delivers a newly generated password after a
// forgot-password request. Login is the CPF for patients, email otherwise.
func (s *MailService) SendTemporaryPassword(email, login, password string, isPatient bool) bool {
	loginLabel := "E-mail"
	if isPatient {
		loginLabel = "CPF"
	}
	subject := "Recuperação de Senha"
	html := fmt.Sprintf(`
	<html>
		<body>
			<h2>Olá!</h2>
			<p>Recebemos uma solicitação de recuperação de senha para a sua conta.</p>
			<ul>
				<li><strong>%s (Login):</strong> %s</li>
				<li><strong>Senha Provisória:</strong> %s</li>
			</ul>
			<p>Use a senha provisória para entrar e altere-a em seguida.</p>
			<br>
			<p>Atenciosamente,<br>Equipe da Clínica</p>
		</body>
	</html>
	`, loginLabel, login, password)

	if err := s.send(email, subject, "Recuperação de Senha", html); err != nil {
		s.log.Warnf("Failed to send password reset email to %s: %+v", email, err)
		return false
	}
	s.log.Infof("Password reset email sent to %s", email)
	return true
}
