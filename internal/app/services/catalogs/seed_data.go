package catalogs

import "hospadmin-service/internal/app/models"

// Baseline master data loaded once into an empty deployment.

func seedSpecialties() []models.CatalogItem {
	return []models.CatalogItem{
		{Code: "MI", Name: "Medicina Interna", Active: true},
		{Code: "CAR", Name: "Cardiología", Active: true},
		{Code: "TRA", Name: "Traumatología", Active: true},
		{Code: "NEU", Name: "Neurología", Active: true},
		{Code: "DER", Name: "Dermatología", Active: true},
		{Code: "OFT", Name: "Oftalmología", Active: true},
		{Code: "GIN", Name: "Ginecología", Active: true},
		{Code: "PED", Name: "Pediatría", Active: true},
		{Code: "URO", Name: "Urología", Active: true},
		{Code: "PSQ", Name: "Psiquiatría", Active: true},
	}
}

func seedPhysicians() []models.CatalogItem {
	return []models.CatalogItem{
		{Code: "M001", Name: "Dra. Carmen Ruiz Salas", Active: true},
		{Code: "M002", Name: "Dr. Javier Ortega Mena", Active: true},
		{Code: "M003", Name: "Dra. Lucía Ferrer Blanco", Active: true},
		{Code: "M004", Name: "Dr. Andrés Molina Vega", Active: true},
		{Code: "M005", Name: "Dra. Pilar Navarro Gil", Active: true},
		{Code: "M006", Name: "Dr. Sergio Campos Díaz", Active: true},
	}
}

func seedMedicalTests() []models.CatalogItem {
	return []models.CatalogItem{
		{Code: "AN", Name: "Analítica", Active: true},
		{Code: "RX", Name: "Radiografía", Active: true},
		{Code: "ECO", Name: "Ecografía", Active: true},
		{Code: "TAC", Name: "TAC", Active: true},
		{Code: "RMN", Name: "Resonancia magnética", Active: true},
		{Code: "ECG", Name: "Electrocardiograma", Active: true},
		{Code: "EEG", Name: "Electroencefalograma", Active: true},
	}
}

func seedReferralSources() []models.CatalogItem {
	return []models.CatalogItem{
		{Code: "AP", Name: "Atención primaria", Active: true},
		{Code: "URG", Name: "Urgencias", Active: true},
		{Code: "INT", Name: "Interconsulta", Active: true},
		{Code: "PRV", Name: "Centro privado", Active: true},
		{Code: "OTR", Name: "Otro centro hospitalario", Active: true},
	}
}
