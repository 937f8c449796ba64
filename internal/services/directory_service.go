package services

import (
	"context"

	"catcare/internal/models/db_models"
	"catcare/internal/models/response_models"
	"catcare/internal/repositories"
)

type DirectoryServiceInterface interface {
	Doctors() []response_models.DoctorInfo
	Clinics() []response_models.ClinicProfile
	RecentCalls(ctx context.Context) []db_models.DoctorCall
}

// directoryDoctors is the full static roster shown on the doctors screen;
// the responder's escalation pool is its first five entries.
var directoryDoctors = []response_models.DoctorInfo{
	{ID: 1, Name: "Dr. Sarah Johnson", Specialty: "Feline Internal Medicine", Location: "New York, USA", Rating: 4.9},
	{ID: 2, Name: "Dr. Hiroshi Tanaka", Specialty: "Veterinary Surgery", Location: "Tokyo, Japan", Rating: 4.8},
	{ID: 3, Name: "Dr. Emma Wilson", Specialty: "Emergency Pet Care", Location: "London, UK", Rating: 4.7},
	{ID: 4, Name: "Dr. Marco Silva", Specialty: "Cat Behavior", Location: "São Paulo, Brazil", Rating: 4.9},
	{ID: 5, Name: "Dr. Anna Mueller", Specialty: "Feline Cardiology", Location: "Berlin, Germany", Rating: 4.8},
	{ID: 6, Name: "Dr. Chen Wei", Specialty: "Pet Dermatology", Location: "Shanghai, China", Rating: 4.6},
	{ID: 7, Name: "Dr. Priya Patel", Specialty: "Feline Nutrition", Location: "Mumbai, India", Rating: 4.7},
	{ID: 8, Name: "Dr. Jean Dubois", Specialty: "Cat Oncology", Location: "Paris, France", Rating: 4.9},
	{ID: 9, Name: "Dr. Lars Andersen", Specialty: "Pet Dental Care", Location: "Copenhagen, Denmark", Rating: 4.8},
}

var directoryClinics = []response_models.ClinicProfile{
	{ID: 1, Name: "City Pet Emergency Center", Distance: "0.5 miles", Rating: 4.8, Services: "Emergency, Surgery", Phone: "+1-555-0123"},
	{ID: 2, Name: "Happy Paws Veterinary Clinic", Distance: "1.2 miles", Rating: 4.9, Services: "General Care, Dental", Phone: "+1-555-0124"},
	{ID: 3, Name: "Animal Health Center", Distance: "2.1 miles", Rating: 4.7, Services: "Specialized Care, X-Ray", Phone: "+1-555-0125"},
	{ID: 4, Name: "Pet Care Plus", Distance: "2.8 miles", Rating: 4.6, Services: "Grooming, Vaccination", Phone: "+1-555-0126"},
	{ID: 5, Name: "Downtown Vet Hospital", Distance: "3.5 miles", Rating: 4.8, Services: "Surgery, Oncology", Phone: "+1-555-0127"},
}

type DirectoryService struct {
	calls repositories.CallRepository
}

func NewDirectoryService(calls repositories.CallRepository) DirectoryServiceInterface {
	return &DirectoryService{calls: calls}
}

func (d *DirectoryService) Doctors() []response_models.DoctorInfo {
	doctors := make([]response_models.DoctorInfo, len(directoryDoctors))
	copy(doctors, directoryDoctors)
	return doctors
}

func (d *DirectoryService) Clinics() []response_models.ClinicProfile {
	clinics := make([]response_models.ClinicProfile, len(directoryClinics))
	copy(clinics, directoryClinics)
	return clinics
}

func (d *DirectoryService) RecentCalls(ctx context.Context) []db_models.DoctorCall {
	return d.calls.List(ctx)
}
