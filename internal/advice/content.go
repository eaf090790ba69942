package advice

// Authored recommendation content. The text is domain data, not derived
// logic; keep edits here, not in the generator.

const (
	summaryHighRisk = "You are at high risk of heart disease. Immediate lifestyle changes are necessary."
	summaryLowRisk  = "You are currently at low risk. Continue maintaining a healthy lifestyle."
)

var highRiskDiet = []string{
	"Avoid saturated and trans fats.",
	"Eat more fiber-rich foods like oats, beans, and whole grains.",
	"Limit salt intake to under 1,500 mg per day.",
	"Drink plenty of water, avoid sugary beverages.",
	"Include omega-3 fatty acids from fish like salmon.",
	"Avoid processed and fast foods.",
	"Increase intake of antioxidants such as berries and dark leafy greens.",
	"Switch to plant-based meals several times a week to reduce saturated fat.",
	"Consume foods rich in potassium such as bananas, sweet potatoes, and spinach to help control blood pressure.",
	"Replace red meat with fish, legumes, and tofu.",
	"Use herbs and spices instead of salt to flavor food.",
	"Choose low-fat dairy or dairy alternatives.",
}

var highRiskExercise = []string{
	"Start with walking 30 minutes daily.",
	"Gradually add jogging or cycling.",
	"Include strength training twice a week.",
	"Practice deep breathing or yoga for stress management.",
	"Try swimming or low-impact aerobics for cardiovascular health.",
	"Avoid sudden intense exercise; warm up and cool down properly.",
	"Use a fitness tracker or app to monitor your physical activity and stay motivated.",
	"Try Tai Chi or Pilates for gentle movement and heart health.",
	"Break exercise into smaller chunks (e.g., 3 x 10-minute walks).",
	"Walk or bike to nearby errands instead of driving.",
	"Join a heart-friendly exercise class designed for older adults or those with heart conditions.",
}

var highRiskRoutine = []string{
	"Wake up by 6–7 AM daily.",
	"Start with warm water and stretching.",
	"Have regular meal times.",
	"Avoid screen time during meals, sleep by 10 PM.",
	"Keep stress journals to monitor triggers.",
	"Schedule regular health check-ups.",
	"Limit alcohol consumption to moderate levels.",
	"Include 10 minutes of morning sunlight to support circadian rhythm and mood.",
	"Plan weekly meals and groceries ahead to support a heart-healthy diet.",
	"Practice gratitude journaling to reduce chronic stress.",
	"Use meditation apps (like Headspace or Calm) to build daily mindfulness habits.",
	"Limit social media use after 8 PM to promote better sleep hygiene.",
}

var lowRiskDiet = []string{
	"Maintain a balanced diet with fruits, vegetables, whole grains.",
	"Include lean proteins like chicken or tofu.",
	"Stay hydrated with 8–10 glasses of water.",
	"Limit intake of processed sugars and snacks.",
	"Include nuts and seeds for healthy fats.",
	"Try one new vegetable or healthy recipe each week to keep your meals interesting.",
	"Make smoothies with leafy greens and berries for heart-healthy breakfasts.",
	"Include fermented foods like yogurt, kimchi, or kefir for gut and heart health.",
}

var lowRiskExercise = []string{
	"Engage in 30 minutes of moderate activity 5 days/week.",
	"Take walking breaks if at a desk often.",
	"Stretch or do yoga to stay flexible.",
	"Try group activities or sports to stay motivated.",
	"Explore outdoor activities like hiking or biking to enjoy nature while staying fit.",
	"Use standing desks or take walking calls to avoid sedentary time.",
	"Follow online cardio or dance classes for fun, engaging workouts at home.",
}

var lowRiskRoutine = []string{
	"Stick to a consistent sleep schedule.",
	"Eat meals at regular intervals.",
	"Check your health every 6 months.",
	"Manage stress through mindfulness or hobbies.",
	"Limit screen time before bed.",
	"Follow a digital detox routine for at least 1 hour before bed.",
	"Keep a weekly planner to manage time and reduce mental clutter.",
	"Join a community group or volunteer to stay socially active and mentally sharp.",
}

// Per-metric tip text appended in the high-risk branch.
const (
	tipHighCholesterol     = "Cholesterol is high: Avoid fried foods, eat oats and legumes regularly."
	tipHighBloodPressure   = "High blood pressure: Avoid salty snacks, reduce caffeine/alcohol."
	tipAbnormalHeartRate   = "Abnormal heart rate: Reduce stress, avoid caffeine, practice breathing."
	tipSmoking             = "You smoke: Quitting significantly reduces heart risk."
	tipDiabetes            = "Manage diabetes with diet and medication as prescribed."
	tipVeryHighCholesterol = "Very high cholesterol: Consult a cardiologist for possible medications."
	tipAgeScreening        = "Due to your age, consider a routine ECG and annual cardiac screening."
	tipFemale              = "Women may experience atypical symptoms of heart disease. Stay informed and monitor any changes."
	tipGlucoseLogs         = "Maintain blood glucose logs and consult a diabetes educator every 3–6 months."
)
