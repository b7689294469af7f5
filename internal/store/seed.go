package store

import "github.com/pdxmph/contact-manager/internal/contact"

// Seed returns the sample contacts every session starts with.
// They are loaded as-is and are not run through validation.
func Seed() []contact.Contact {
	return []contact.Contact{
		{
			ID:           "1",
			Name:         "Priya Sharma",
			Email:        "example.priya@gmail.com",
			ContactNo:    "9873483332",
			AddressLine1: "Plot No. 57, Industrial Area Phase 2",
			AddressLine2: "Chandigarh, Punjab, 160002",
			Pincode:      "160002",
			State:        "Punjab",
		},
		{
			ID:           "2",
			Name:         "Rahul Mehta",
			Email:        "example.rahul@example.com",
			ContactNo:    "9123483332",
			AddressLine1: "Unit 4B, MIDC Taloja, Sector 10",
			AddressLine2: "Navi Mumbai, Maharashtra, 410208",
			Pincode:      "410208",
			State:        "Maharashtra",
		},
		{
			ID:           "3",
			Name:         "Param Aggarwal",
			Email:        "param.xyz.mail@gmail.com",
			ContactNo:    "9478877767",
			AddressLine1: "",
			AddressLine2: "Firozpur",
			Pincode:      "152004",
			State:        "Punjab",
		},
		{
			ID:           "4",
			Name:         "Jatin Malhotra",
			Email:        "jatin.malhotra@gmail.com",
			ContactNo:    "9123445332",
			AddressLine1: "Sector 10, Gurugram",
			Pincode:      "122008",
			State:        "Haryana",
		},
		{
			ID:           "5",
			Name:         "Aditya",
			Email:        "aditya.work@yahoo.in",
			ContactNo:    "9464747884",
			AddressLine1: "Koramangla",
			AddressLine2: "bangalore",
			Pincode:      "444208",
			State:        "Karnataka",
		},
		{
			ID:           "6",
			Name:         "Interviewer",
			Email:        "para_5764@@gov.in",
			ContactNo:    "94994444",
			AddressLine1: "Nangal",
			Pincode:      "142005",
			State:        "Punjab",
		},
	}
}
