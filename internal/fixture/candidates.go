package fixture

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vivo1806/Talent-Flow/pkg/model"
)

// Candidates generates n candidate records with the fixed fixture schema.
// The same seed always yields the same dataset, so the in-memory candidate
// collection is reproducible across restarts.
func Candidates(n int, seed int64) []model.Candidate {
	rng := rand.New(rand.NewSource(seed))
	now := time.Now()

	out := make([]model.Candidate, 0, n)
	for i := 1; i <= n; i++ {
		firstName := pick(rng, firstNames)
		lastName := pick(rng, lastNames)
		experience := rng.Intn(16)

		out = append(out, model.Candidate{
			ID:             fmt.Sprintf("candidate-%d", i),
			Name:           firstName + " " + lastName,
			Email:          email(rng, firstName, lastName),
			Phone:          phone(rng),
			Position:       pick(rng, positions),
			Experience:     experience,
			Skills:         pickSome(rng, skills, 3, 8),
			Resume:         fmt.Sprintf("https://example.com/resume/%s-%s.pdf", strings.ToLower(firstName), strings.ToLower(lastName)),
			Status:         statuses[rng.Intn(len(statuses))],
			AppliedAt:      now.Add(-time.Duration(1+rng.Intn(365)) * 24 * time.Hour),
			Location:       pick(rng, cities),
			ExpectedSalary: salary(rng, experience),
		})
	}
	return out
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

func pickSome(rng *rand.Rand, pool []string, min, max int) []string {
	count := min + rng.Intn(max-min+1)
	perm := rng.Perm(len(pool))
	out := make([]string, 0, count)
	for _, idx := range perm[:count] {
		out = append(out, pool[idx])
	}
	return out
}

func email(rng *rand.Rand, firstName, lastName string) string {
	return fmt.Sprintf("%s.%s@%s", strings.ToLower(firstName), strings.ToLower(lastName), pick(rng, domains))
}

func phone(rng *rand.Rand) string {
	area := 200 + rng.Intn(800)
	prefix := 200 + rng.Intn(800)
	line := 1000 + rng.Intn(9000)
	return fmt.Sprintf("+1 (%d) %d-%d", area, prefix, line)
}

func salary(rng *rand.Rand, experience int) string {
	base := 60000 + experience*10000
	min := base - rng.Intn(10001)
	max := base + 20000 + rng.Intn(20001)
	return fmt.Sprintf("$%dk - $%dk", min/1000, max/1000)
}

var statuses = []model.CandidateStatus{
	model.CandidateStatusNew,
	model.CandidateStatusScreening,
	model.CandidateStatusInterview,
	model.CandidateStatusOffer,
	model.CandidateStatusRejected,
}

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
	"Linda", "William", "Elizabeth", "David", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Christopher",
	"Nancy", "Daniel", "Lisa", "Matthew", "Betty", "Anthony", "Margaret",
	"Mark", "Sandra", "Steven", "Kimberly", "Paul", "Emily", "Andrew",
	"Donna", "Joshua", "Michelle", "Kevin", "Carol", "Brian", "Amanda",
	"Eric", "Angela", "Jacob", "Kathleen", "Ryan", "Cynthia", "Justin",
	"Nicole",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

var positions = []string{
	"Frontend Developer", "Backend Developer", "Full Stack Developer",
	"DevOps Engineer", "Data Scientist", "Mobile Developer", "QA Engineer",
	"Product Manager", "UI/UX Designer", "Machine Learning Engineer",
	"Site Reliability Engineer", "Security Engineer",
}

var skills = []string{
	"JavaScript", "TypeScript", "React", "Node.js", "Python", "Go", "Java",
	"SQL", "PostgreSQL", "MongoDB", "AWS", "Docker", "Kubernetes", "GraphQL",
	"Redis", "Terraform", "CI/CD", "Git", "Linux", "Machine Learning",
	"REST APIs", "Microservices", "Swift", "Kotlin",
}

var cities = []string{
	"San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX",
	"Boston, MA", "Denver, CO", "Chicago, IL", "Los Angeles, CA",
	"Atlanta, GA", "Portland, OR", "Miami, FL", "Dallas, TX", "Remote",
}

var domains = []string{
	"gmail.com", "yahoo.com", "outlook.com", "example.com",
}
