package ports

import "time"

// Clock abstracts time so reward accrual is testable without sleeping.
type Clock interface {
	Now() time.Time
}
