package resource

import "studyhub/internal/model"

// Defaults is the built-in resource list used when storage has none
var Defaults = []model.Resource{
	{
		Title:    "INPT Ressources",
		Link:     "https://drive.google.com/drive/folders/1N47xVtTOCrZABlqEFT7V3lAsPq9yLiQK?usp=drive_link",
		Position: 1,
	},
	{
		Title:    "ENSET Ressources",
		Link:     "https://drive.google.com/drive/folders/1eGHv7dk0t78Y5Uo6HK1K0SJZ8cMpPGA5?usp=drive_link",
		Position: 2,
	},
	{
		Title:    "BAC+2 Ressources",
		Link:     "https://drive.google.com/drive/folders/0B6myi2jo94YuSGNTNE9wN0FjVTQ?resourcekey=0-MFWuNEsHMkgJv_y-BxC7AQ&usp=drive_link",
		Position: 3,
	},
	{
		Title:    "OTHER Ressources",
		Link:     "https://drive.google.com/drive/folders/1SOv15eGJ0I_k7cRjDGqkNXCmQ-VqR9kz?usp=drive_link",
		Position: 4,
	},
	{
		Title:    "Livres Ressources",
		Link:     "https://drive.google.com/drive/folders/1tupfOQUq7opePd0Xq_LGmnj_xtwILRnk?usp=drive_link",
		Position: 5,
	},
}
