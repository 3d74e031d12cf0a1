package foldz

import "context"

// StudentRecord holds one student's name and their grades.
type StudentRecord struct {
	Name   string
	Grades []float64
}

// GradesReport summarizes a class: the students with the highest and
// lowest per-student averages and the class-wide average over every
// individual grade, rounded to one decimal place.
type GradesReport struct {
	BestStudent  string
	WorstStudent string
	ClassAverage float64
}

// AnalyzeGrades computes a GradesReport in a single pass over the records.
// Best and worst are decided by strict comparison against the running
// extreme, so the first student to reach a given average holds the title.
// A student with no grades averages 0. An empty class yields a zero
// report.
func AnalyzeGrades(ctx context.Context, records []StudentRecord) GradesReport {
	if len(records) == 0 {
		return GradesReport{}
	}

	classPoints := NewSum[float64]("grades.class.points")
	classGrades := NewSum[int]("grades.class.count")

	best, worst := "", ""
	bestAvg, worstAvg := -1.0, 101.0

	for _, student := range records {
		studentPoints := NewSum[float64]("grades.student.points")
		for _, grade := range student.Grades {
			studentPoints.Add(ctx, grade)
			classPoints.Add(ctx, grade)
			classGrades.Add(ctx, 1)
		}

		avg := 0.0
		if len(student.Grades) > 0 {
			avg = studentPoints.Result() / float64(len(student.Grades))
		}

		if avg > bestAvg {
			bestAvg = avg
			best = student.Name
		}
		if avg < worstAvg {
			worstAvg = avg
			worst = student.Name
		}
	}

	report := GradesReport{
		BestStudent:  best,
		WorstStudent: worst,
	}
	if count := classGrades.Result(); count > 0 {
		report.ClassAverage = round(classPoints.Result()/float64(count), 1)
	}
	return report
}
