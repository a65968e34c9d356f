package entity

import "time"

// Patient represents a clinic patient. Patients with a CPF and a password can
// log into the patient portal to message their professional.
type Patient struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string     `gorm:"type:varchar(255);not null;index" json:"name"`
	CPF           string     `gorm:"type:varchar(14);uniqueIndex" json:"cpf,omitempty"`
	BirthDate     *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Gender        string     `gorm:"type:varchar(20)" json:"gender,omitempty"`
	MaritalStatus string     `gorm:"type:varchar(30)" json:"marital_status,omitempty"`
	Profession    string     `gorm:"type:varchar(100)" json:"profession,omitempty"`

	// Contact and address
	Phone               string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email               string `gorm:"type:varchar(255)" json:"email,omitempty"`
	AddressCEP          string `gorm:"column:address_cep;type:varchar(10)" json:"address_cep,omitempty"`
	AddressStreet       string `gorm:"type:varchar(255)" json:"address_street,omitempty"`
	AddressNumber       string `gorm:"type:varchar(20)" json:"address_number,omitempty"`
	AddressComplement   string `gorm:"type:varchar(100)" json:"address_complement,omitempty"`
	AddressNeighborhood string `gorm:"type:varchar(100)" json:"address_neighborhood,omitempty"`
	AddressCity         string `gorm:"type:varchar(100)" json:"address_city,omitempty"`
	AddressState        string `gorm:"type:varchar(2)" json:"address_state,omitempty"`

	// Insurance and payment
	AttendanceType          string     `gorm:"type:varchar(50);default:'Particular'" json:"attendance_type,omitempty"`
	InsurancePlan           string     `gorm:"type:varchar(100)" json:"insurance_plan,omitempty"`
	InsuranceNumber         string     `gorm:"type:varchar(50)" json:"insurance_number,omitempty"`
	InsuranceExpirationDate *time.Time `gorm:"type:date" json:"insurance_expiration_date,omitempty"`

	// Emergency and consent
	EmergencyContactName     string `gorm:"type:varchar(255)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone    string `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelation string `gorm:"type:varchar(50)" json:"emergency_contact_relation,omitempty"`
	ConsentTermsAccepted     bool   `gorm:"not null;default:false" json:"consent_terms_accepted"`

	ProfessionalID *int      `gorm:"index" json:"professional_id,omitempty"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Ativo'" json:"status"`
	Observations   string    `gorm:"type:text" json:"observations,omitempty"`
	Password       string    `gorm:"type:text" json:"-"`
	CareModality   string    `gorm:"type:varchar(30);default:'Presencial'" json:"care_modality,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Professional *Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Patient status constants
const (
	PatientStatusActive   = "Ativo"
	PatientStatusInactive = "Inativo"
)
