package seeder

import (
	"context"

	"jobswipe/internal/domain/candidate"
	"jobswipe/internal/domain/vacancy"
)

// DemoVacancies span two companies so ownership rules can be tried out.
var DemoVacancies = []vacancy.Vacancy{
	{ID: "emp-1", CompanyID: "acme", Company: "Acme Corp", Title: "Go Backend Engineer"},
	{ID: "emp-2", CompanyID: "acme", Company: "Acme Corp", Title: "Site Reliability Engineer"},
	{ID: "emp-3", CompanyID: "globex", Company: "Globex", Title: "Data Analyst"},
}

var DemoCandidates = []candidate.Candidate{
	{ID: "C1", Name: "Ada Lovelace"},
	{ID: "C2", Name: "Grace Hopper"},
	{ID: "C3", Name: "Alan Turing"},
}

type VacanciesSeeder struct{}

func (VacanciesSeeder) Name() string { return "vacancies" }

func (VacanciesSeeder) Run(ctx context.Context, cat Catalog) error {
	for _, v := range DemoVacancies {
		if err := cat.Vacancies.Upsert(ctx, v); err != nil {
			return err
		}
	}
	return nil
}

type CandidatesSeeder struct{}

func (CandidatesSeeder) Name() string { return "candidates" }

func (CandidatesSeeder) Run(ctx context.Context, cat Catalog) error {
	for _, c := range DemoCandidates {
		if err := cat.Candidates.Upsert(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
