package dto

// Response DTOs

type DashboardStatsResponse struct {
	TotalPatients      int64                `json:"total_patients"`
	TotalProfessionals int                  `json:"total_professionals"`
	AppointmentsToday  int64                `json:"appointments_today"`
	AppointmentsWeek   int64                `json:"appointments_week"`
	NextAppointment    *AppointmentResponse `json:"next_appointment,omitempty"`
}

type ChartPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ChartDataResponse struct {
	Period string       `json:"period"`
	Points []ChartPoint `json:"points"`
}

type CalendarDay struct {
	Day          int                   `json:"day"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type CalendarResponse struct {
	Month int           `json:"month"`
	Year  int           `json:"year"`
	Days  []CalendarDay `json:"days"`
}
