package employees

const (
	DefaultEmail       = ""
	DefaultPhoneNumber = "Unknown"
	DefaultRole        = ""
)

// Employee es un registro de la colección "employees". Name es requerido y único.
type Employee struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	// Schedule es opaco: se guarda y devuelve tal cual llega (null si no se envió).
	Schedule any `json:"schedule"`
}
