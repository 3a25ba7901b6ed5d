package career

// comprehensivePrompt wraps every analysis query with formatting and
// grounding instructions before it goes to the LLM.
const comprehensivePrompt = `Please provide comprehensive and detailed information on the following query: %s

Structure your response clearly with headings and bullet points.
Make it detailed, informative, and professional.
Include specific examples and actionable insights where possible.
Focus on current industry standards and trends (2024-2025).
Provide realistic and accurate information based on current market conditions.
Use markdown formatting for better readability.`

// overviewQuery covers the role itself: responsibilities, skills, entry paths.
const overviewQuery = `Create a detailed overview of the %[1]s career with the following structure:
1. **Role Overview**: What do %[1]s professionals do? Include main purpose and impact.
2. **Key Responsibilities**: List 8-10 main tasks and responsibilities with specific examples.
3. **Required Technical Skills**: List specific technical skills, tools, and software needed.
4. **Required Soft Skills**: List essential soft skills and interpersonal abilities.
5. **Educational Background**: What degrees, certifications, or qualifications are typically required?
6. **Career Entry Paths**: Describe 3-4 different ways someone can enter this field.
7. **Prerequisites**: What background knowledge or experience is helpful?

Provide specific, actionable information with real-world examples.`

// marketQuery covers demand, salaries, hotspots and outlook.
const marketQuery = `Analyze the job market for %[1]s professionals with the following structure:
1. **Job Growth Projections**: How is job growth trending? Include specific percentages if available.
2. **Salary Ranges**: What are the salary ranges by experience level (entry: 0-2 years, mid: 3-7 years, senior: 8+ years)?
3. **Top Industries**: Which 5-7 industries hire %[1]s professionals most?
4. **Geographic Hotspots**: Which cities/regions have the most opportunities?
5. **Market Demand**: Is there high demand, competitive market, or oversaturation?
6. **Emerging Trends**: What new trends are affecting this field in 2024-2025?
7. **Job Market Outlook**: What's the 5-10 year outlook for this career?
8. **Competition Level**: How competitive is it to get hired?

Include specific data, statistics, and current market conditions where possible.`

// roadmapQuery is templated with the career name and the experience bucket.
const roadmapQuery = `Create a comprehensive learning roadmap for becoming a %s professional at the %s level:
1. **Core Skills to Develop**: What specific technical and soft skills are essential? Prioritize by importance.
2. **Education Requirements**: Degrees, certificates, bootcamps, or alternative qualifications needed.
3. **Recommended Courses**: Specific online courses, platforms, and training programs with names.
4. **Learning Resources**: Books, websites, YouTube channels, podcasts, and communities.
5. **Practical Experience**: How to gain hands-on experience, internships, and build portfolio.
6. **Certifications**: Industry-recognized certifications to pursue, with difficulty levels.
7. **Timeline**: Realistic timeline for skill acquisition and career transition (months/years).
8. **Milestones**: Key milestones to track progress and validate learning.
9. **Common Pitfalls**: What mistakes to avoid during learning process.

Make it actionable with specific recommendations and realistic timeframes.`

// insightsQuery covers culture, day-to-day, progression and outlook.
const insightsQuery = `Provide comprehensive industry insights for %[1]s professionals:
1. **Workplace Culture**: What is the typical work environment and company culture like?
2. **Day-to-Day Activities**: What does a typical workday include? Provide hour-by-hour breakdown.
3. **Career Progression**: What career advancement paths and promotion tracks exist?
4. **Work-Life Balance**: How is work-life balance? Include typical hours and flexibility.
5. **Remote Work**: Are remote work opportunities available? What percentage work remotely?
6. **Industry Trends**: Current and emerging technology trends affecting this role.
7. **Success Strategies**: What tips and strategies help professionals succeed?
8. **Common Challenges**: What obstacles and difficulties do professionals face?
9. **Networking**: How important is networking and professional relationships?
10. **Future Outlook**: How will AI, automation, and technology changes affect this role?
11. **Job Security**: How stable is this career path?
12. **Stress Levels**: What are typical stress levels and pressure points?

Provide practical insights and real-world perspectives from industry professionals.`

// chatPrompt embeds the routed context, recent transcript and the question.
const chatPrompt = `You are an AI Career Chat Assistant providing personalized career guidance.

Career Information Context:
%s

Recent Conversation History:
%s

Current User Question: %s

Instructions:
- Provide a helpful, structured response based on the career information provided
- Use bullet points and clear headings to organize information
- Be conversational but professional
- Reference specific information from the career data when relevant
- If the question is outside the provided context, give general career advice
- Keep responses concise but informative (aim for 200-400 words)
- Format the response for easy reading with markdown
- Include specific examples when possible
- If asked about numbers/data, provide realistic estimates based on the context

Response:`

// composePrompt asks the LLM to act as the report composer. The reply must
// carry SUBJECT:/CONTENT: markers so the delivery stage can split it.
const composePrompt = `You are an expert email writer specializing in career guidance communications.
Create a comprehensive and professional email containing career analysis for %s.

Career Data to Include:
- Career Name: %s
- Career Overview: %s
- Market Analysis: %s
- Learning Roadmap: %s
- Industry Insights: %s

Requirements:
- Create an engaging subject line
- Structure the content with clear sections and headings
- Use markdown formatting for better readability
- Include key highlights and actionable insights
- Keep it professional yet personable
- Add a personalized greeting for %s
- Include next steps and recommendations

Format the response as:
SUBJECT: [Your suggested subject line]
CONTENT: [Your email content in markdown format]`
