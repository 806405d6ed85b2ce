package seed

import (
	"context"
	"strings"

	"go-payledger/internal/department"
	"go-payledger/internal/employee"
	"go-payledger/internal/history"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var techDepartments = []string{
	"Frontend Engineering", "Backend Engineering", "Full Stack Development", "Mobile Development", "DevOps Engineering",
	"Site Reliability Engineering", "Systems Engineering", "Embedded Systems", "Gaming Engineering", "Firmware Engineering",
	"Data Engineering", "Data Science", "Machine Learning Engineering", "Business Intelligence", "Data Analytics",
	"Artificial Intelligence", "Natural Language Processing", "Computer Vision Engineering", "Predictive Analytics", "Big Data Engineering",
	"Information Security", "Network Engineering", "Cloud Infrastructure", "Platform Engineering", "Security Operations",
	"Cybersecurity", "Identity & Access Management", "Infrastructure Automation", "Network Security", "Cloud Security",
	"Blockchain Development", "AR/VR Development", "IoT Engineering", "Quantum Computing", "Robotics Engineering",
	"Autonomous Systems", "5G Engineering", "Cryptography Engineering", "High Performance Computing", "Edge Computing",
	"Quality Assurance", "QA Automation", "Technical Support", "IT Operations", "Solutions Architecture",
	"Database Administration", "Release Engineering", "Production Engineering", "Technical Program Management", "API Development",
}

var skillPool = []string{
	"Python", "Java", "JavaScript", "C++", "C#", "Ruby", "PHP", "Swift", "Kotlin", "Go", "Rust", "TypeScript", "SQL",
	"React", "Angular", "Vue.js", "Node.js", "Django", "Flask", "Spring Boot", "GraphQL", "REST APIs",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Terraform", "Ansible",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Data Analysis", "Big Data", "Data Mining",
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Cassandra", "Elasticsearch",
	"Git", "Agile", "Scrum", "Kanban", "TDD", "CI/CD", "Microservices", "Design Patterns",
	"Leadership", "Communication", "Problem Solving", "Team Management", "Mentoring",
	"Penetration Testing", "Encryption", "Network Security", "Ethical Hacking", "OWASP",
	"iOS Development", "Android Development", "React Native", "Flutter",
}

// workDaysPerYear turns annual base pay into a day wage (basePay / 260),
// matching the legacy seed's arithmetic.
const workDaysPerYear = 260

type seededDepartment struct {
	name    string
	basePay float64
}

type Seeder struct {
	departments department.Repository
	employees   employee.Repository
	histories   history.Repository
	logger      *zap.Logger
}

func New(db *gorm.DB, logger ...*zap.Logger) *Seeder {
	l := zap.L().Named("seed")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seed")
	}
	return &Seeder{
		departments: department.NewRepository(db),
		employees:   employee.NewRepository(db),
		histories:   history.NewRepository(db),
		logger:      l,
	}
}

// Run inserts the department catalog and numEmployees fake employees, each
// with a matching ledger row and a population bump on its department.
// History emp_ids are drawn independently from employees.id on purpose:
// the legacy dataset never correlated them, and downstream joins go by
// name/department instead.
func (s *Seeder) Run(ctx context.Context, numEmployees int) error {
	s.logger.Info("seeding departments", zap.Int("count", len(techDepartments)))

	depts := make([]seededDepartment, 0, len(techDepartments))
	for _, name := range techDepartments {
		basePay := gofakeit.Float64Range(30000, 150000)
		if err := s.departments.Create(ctx, &department.Department{
			Name:       name,
			BasePay:    basePay,
			Population: 0,
		}); err != nil {
			return err
		}
		depts = append(depts, seededDepartment{name: name, basePay: basePay})
	}

	s.logger.Info("seeding employees and history", zap.Int("count", numEmployees))

	for i := 0; i < numEmployees; i++ {
		if i > 0 && i%100 == 0 {
			s.logger.Info("seed progress", zap.Int("inserted", i))
		}

		dept := depts[gofakeit.Number(0, len(depts)-1)]
		name := gofakeit.Name()

		if err := s.departments.IncrementPopulation(ctx, dept.name); err != nil {
			return err
		}

		if err := s.employees.Create(ctx, &employee.Employee{
			Name:       name,
			Skills:     pickSkills(2, 5),
			Pay:        gofakeit.Float64Range(dept.basePay, 180000),
			Department: dept.name,
			Level:      gofakeit.Number(-2, 12),
		}); err != nil {
			return err
		}

		if err := s.histories.Create(ctx, &history.Record{
			EmpName:      name,
			DaysEmployed: int64(gofakeit.Number(1, 10000)),
			DayWage:      dept.basePay / workDaysPerYear,
			InDept:       dept.name,
			EmpID:        int64(gofakeit.Number(1, 9999)),
		}); err != nil {
			return err
		}
	}

	s.logger.Info("seed complete",
		zap.Int("departments", len(depts)),
		zap.Int("employees", numEmployees),
	)

	return nil
}

// pickSkills draws between min and max unique skills, comma-joined the way
// the employees.skills column stores them.
func pickSkills(min, max int) string {
	n := gofakeit.Number(min, max)
	pool := make([]string, len(skillPool))
	copy(pool, skillPool)
	gofakeit.ShuffleStrings(pool)
	return strings.Join(pool[:n], ", ")
}
