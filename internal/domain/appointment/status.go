package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendente"
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
	StatusCompleted Status = "concluido"
)

// Initial é o status atribuído quando nenhum é informado na criação.
func Initial() Status {
	return StatusPending
}

// IsValid informa se o valor pertence ao vocabulário de status.
func IsValid(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Blocks informa se um agendamento neste status ocupa o horário para fins
// de conflito. Agendamentos cancelados liberam o horário.
func Blocks(s string) bool {
	return Status(s) != StatusCancelled
}
